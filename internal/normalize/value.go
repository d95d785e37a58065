// Package normalize maps the fitting engine's raw, schema-unstable output
// into a stable display schema: fixed statistic keys, fixed parameter
// columns, fixed numeric formatting. Normalization never fails; anything the
// engine did not provide degrades to an explicit unavailable marker.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
)

// NotAvailable is the display marker for values the engine did not provide.
const NotAvailable = "N/A"

// ValueKind discriminates a Value.
type ValueKind int

const (
	// KindUnavailable marks a value the engine did not provide.
	KindUnavailable ValueKind = iota
	// KindNumeric marks a numeric value eligible for fixed formatting.
	KindNumeric
	// KindText marks a non-numeric value carried through verbatim.
	KindText
)

// Value is the tagged variant produced once at the engine boundary, so all
// downstream formatting is a total function instead of repeated runtime type
// checks.
type Value struct {
	kind ValueKind
	num  float64
	text string
}

// Unavailable returns the absent-value variant.
func Unavailable() Value { return Value{} }

// Numeric returns a numeric value.
func Numeric(v float64) Value { return Value{kind: KindNumeric, num: v} }

// Text returns a verbatim text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// ValueOf classifies a dynamically typed engine value. Numbers of any width
// become Numeric; strings stay Text even when they look numeric, because the
// engine chose to emit them as text (fixed/constrained parameter markers).
func ValueOf(v any) Value {
	switch val := v.(type) {
	case nil:
		return Unavailable()
	case float64:
		if math.IsNaN(val) {
			return Unavailable()
		}
		return Numeric(val)
	case float32:
		return ValueOf(float64(val))
	case int:
		return Numeric(float64(val))
	case int32:
		return Numeric(float64(val))
	case int64:
		return Numeric(float64(val))
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return ValueOf(f)
		}
		return Text(val.String())
	case string:
		if val == "" {
			return Unavailable()
		}
		return Text(val)
	case bool:
		return Text(strconv.FormatBool(val))
	default:
		return Unavailable()
	}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// Float returns the numeric value and whether the variant is numeric.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumeric
}

// Format renders the value with the given number of decimal places. Text
// passes through untouched; unavailable renders the marker.
func (v Value) Format(decimals int) string {
	switch v.kind {
	case KindNumeric:
		return strconv.FormatFloat(v.num, 'f', decimals, 64)
	case KindText:
		return v.text
	default:
		return NotAvailable
	}
}

// FormatInt renders a numeric value as a whole number (degrees of freedom).
func (v Value) FormatInt() string {
	switch v.kind {
	case KindNumeric:
		return strconv.FormatInt(int64(math.Round(v.num)), 10)
	case KindText:
		return v.text
	default:
		return NotAvailable
	}
}
