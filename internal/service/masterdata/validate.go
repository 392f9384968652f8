package masterdata

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	numericPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
)

// FieldError reports a single invalid form field so the dashboard can show
// the message next to the input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RequireText enforces presence and a length cap on a text field.
func RequireText(field, value string, maxLen int) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return &FieldError{Field: field, Message: "is required"}
	}
	if maxLen > 0 && len(trimmed) > maxLen {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxLen)}
	}
	return nil
}

// RequireNumeric enforces a non-empty decimal-number field.
func RequireNumeric(field, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return &FieldError{Field: field, Message: "is required"}
	}
	if !numericPattern.MatchString(trimmed) {
		return &FieldError{Field: field, Message: "must be a number"}
	}
	return nil
}

// OptionalPhone accepts an empty value or exactly ten digits.
func OptionalPhone(field, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if !phonePattern.MatchString(trimmed) {
		return &FieldError{Field: field, Message: "must be a 10 digit mobile number"}
	}
	return nil
}
