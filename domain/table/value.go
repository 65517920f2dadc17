package table

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind defines the storage type for cell values
type ValueKind string

const (
	KindNumber ValueKind = "number"
	KindText   ValueKind = "text"
	KindEmpty  ValueKind = "empty"
)

// Value is a typed cell value. Exactly one variant is populated, selected by
// Kind; Empty covers absent, null and blank cells alike.
type Value struct {
	Kind      ValueKind `json:"kind"`
	NumberVal *float64  `json:"number_val,omitempty"`
	TextVal   *string   `json:"text_val,omitempty"`
}

// NewNumberValue creates a numeric value
func NewNumberValue(n float64) Value {
	return Value{Kind: KindNumber, NumberVal: &n}
}

// NewTextValue creates a text value; a blank string collapses to Empty
func NewTextValue(s string) Value {
	if s == "" {
		return Value{Kind: KindEmpty}
	}
	return Value{Kind: KindText, TextVal: &s}
}

// NewEmptyValue creates an empty value
func NewEmptyValue() Value {
	return Value{Kind: KindEmpty}
}

// ParseCell converts a raw cell string into a typed Value. Leading and
// trailing whitespace is ignored for the numeric parse, matching a
// Number()-style coercion.
func ParseCell(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NewEmptyValue()
	}
	// ParseFloat accepts "NaN" and "Inf" spellings; neither is a usable
	// number for statistics, so they stay text.
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return NewNumberValue(n)
	}
	return NewTextValue(trimmed)
}

// IsEmpty returns true for the Empty variant
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// Float returns the numeric value and whether the value is a valid number
func (v Value) Float() (float64, bool) {
	if v.Kind == KindNumber && v.NumberVal != nil {
		return *v.NumberVal, true
	}
	return 0, false
}

// String returns the display form of the value. Numbers use the shortest
// round-trip formatting; Empty renders as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		if v.NumberVal != nil {
			return strconv.FormatFloat(*v.NumberVal, 'f', -1, 64)
		}
	case KindText:
		if v.TextVal != nil {
			return *v.TextVal
		}
	}
	return ""
}
