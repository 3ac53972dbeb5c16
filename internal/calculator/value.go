package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the representation held by a Value.
type Kind int

const (
	// KindInt is a 64-bit signed integer.
	KindInt Kind = iota
	// KindFloat is a 64-bit float.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is an integer or floating-point operand whose type is only known at
// runtime, such as a number typed on the command line.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integer Value.
func Int(n int64) Value {
	return Value{kind: KindInt, i: n}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// ParseValue parses s as a base-10 integer, falling back to a float.
// "5" is an integer; "5.0", "5e0" and ".5" are floats. An integer literal
// outside the int64 range is an error matching strconv.ErrRange; write it
// as a float ("9223372036854775808.0") to get the rounded value.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, errors.New("empty operand")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return Int(n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return Value{}, fmt.Errorf("integer %q out of range: %w", s, strconv.ErrRange)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q", s)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, fmt.Errorf("operand %q must be finite", s)
	}
	return Float(f), nil
}

// Kind reports the representation of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsFloat reports whether v holds a float.
func (v Value) IsFloat() bool {
	return v.kind == KindFloat
}

// Float64 returns v as a float.
func (v Value) Float64() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	return float64(v.i)
}

// String renders integers in base 10 and floats in their shortest
// round-trip form. Integral floats keep a trailing ".0" so the kind stays
// visible; very large and very small magnitudes use exponent notation.
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	return formatFloat(v.f)
}

// Format renders v with floats rounded to precision decimal places.
// A negative precision is the same as String.
func (v Value) Format(precision int) string {
	if v.kind == KindInt || precision < 0 {
		return v.String()
	}
	if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
		return formatFloat(v.f)
	}
	return strconv.FormatFloat(v.f, 'f', precision, 64)
}

// MarshalJSON encodes v as a JSON number. Non-finite floats, which JSON
// cannot represent, are encoded as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindFloat && (math.IsInf(v.f, 0) || math.IsNaN(v.f)) {
		return []byte(strconv.Quote(formatFloat(v.f))), nil
	}
	return []byte(v.String()), nil
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
