package masterdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireText(t *testing.T) {
	assert.NoError(t, RequireText("name", "Biryani", 50))
	assert.NoError(t, RequireText("name", "  Biryani  ", 10))

	var fieldErr *FieldError

	err := RequireText("name", "   ", 50)
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "name", fieldErr.Field)

	err = RequireText("name", "a very long value over the cap", 10)
	assert.ErrorAs(t, err, &fieldErr)
}

func TestRequireNumeric(t *testing.T) {
	assert.NoError(t, RequireNumeric("qty", "12"))
	assert.NoError(t, RequireNumeric("qty", "12.5"))

	for _, bad := range []string{"", "12,5", "abc", "1.2.3", "-4"} {
		assert.Error(t, RequireNumeric("qty", bad), "expected %q to fail", bad)
	}
}

func TestOptionalPhone(t *testing.T) {
	assert.NoError(t, OptionalPhone("mobile", ""))
	assert.NoError(t, OptionalPhone("mobile", "9876543210"))

	for _, bad := range []string{"12345", "98765432101", "98765abc10", "+919876543210"} {
		assert.Error(t, OptionalPhone("mobile", bad), "expected %q to fail", bad)
	}
}
