package mdcfg

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies which field of a Value is set.
type Kind int

const (
	KindString Kind = iota // text that is not a number
	KindInt                // base-10 integer
	KindFloat              // number written with a dot
)

// String names the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is a scalar leaf: an integer, a float or a string.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// coerce turns raw value text into a Value. Text containing a dot is tried
// as a float, anything else as a base-10 integer; text that parses as
// neither stays a string.
func coerce(raw string) Value {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Float(f)
		}
		return String(raw)
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i)
	}
	return String(raw)
}

// Kind reports which scalar v holds.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer and whether v holds one.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns the float and whether v holds one.
func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// Str returns the string and whether v holds one.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Any returns the held scalar as int64, float64 or string.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.s
	}
}

// Text formats v so that coerce(v.Text()) gives v back. Floats always carry
// a dot.
func (v Value) Text() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	default:
		return v.s
	}
}

// String is Text, for fmt.
func (v Value) String() string {
	return v.Text()
}

// MarshalJSON encodes v as a JSON number or string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// MarshalYAML encodes v as a plain YAML scalar.
func (v Value) MarshalYAML() (any, error) {
	return v.Any(), nil
}

// ParseValue coerces raw text the same way FlatDict coerces values.
func ParseValue(raw string) Value {
	return coerce(raw)
}
