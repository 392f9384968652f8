package models

import (
	"encoding/json"
	"testing"
)

func TestQty_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare number", in: `12.5`, want: "12.5"},
		{name: "quoted number", in: `"12.5"`, want: "12.5"},
		{name: "integer", in: `40`, want: "40"},
		{name: "null coerces to zero", in: `null`, want: "0"},
		{name: "empty string coerces to zero", in: `""`, want: "0"},
		{name: "garbage coerces to zero", in: `"abc"`, want: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var q Qty
			if err := json.Unmarshal([]byte(tc.in), &q); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if q.String() != tc.want {
				t.Errorf("got %s, want %s", q.String(), tc.want)
			}
		})
	}
}

func TestQty_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(ParseQty("2.4"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "2.4" {
		t.Errorf("got %s, want 2.4", out)
	}
}

func TestParseQty(t *testing.T) {
	if got := ParseQty(" 7.25 "); got.String() != "7.25" {
		t.Errorf("got %s, want 7.25", got)
	}
	if got := ParseQty("nope"); !got.IsZero() {
		t.Errorf("got %s, want 0", got)
	}
}
