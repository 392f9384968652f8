package models

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Qty is a decimal quantity as exchanged with the backend. Payloads mix bare
// numbers and numeric strings, and malformed values coerce to zero instead of
// failing the whole decode.
type Qty struct {
	decimal.Decimal
}

// QtyFrom builds a Qty from a decimal value.
func QtyFrom(d decimal.Decimal) Qty {
	return Qty{Decimal: d}
}

// ParseQty converts free-form numeric text into a Qty, coercing anything
// unparseable to zero.
func ParseQty(s string) Qty {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Qty{}
	}
	return Qty{Decimal: d}
}

// UnmarshalJSON accepts numbers, quoted numbers, null and garbage alike.
func (q *Qty) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if raw == "" || raw == "null" {
		q.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		q.Decimal = decimal.Zero
		return nil
	}

	q.Decimal = d
	return nil
}

// MarshalJSON emits the quantity as a bare JSON number.
func (q Qty) MarshalJSON() ([]byte, error) {
	return []byte(q.Decimal.String()), nil
}
