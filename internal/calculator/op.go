package calculator

import (
	"fmt"
	"strings"
)

// Op is a binary arithmetic operation.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpFloorDivide
)

// Ops lists every operation in display order.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide, OpFloorDivide}

var opInfo = map[Op]struct {
	name   string
	symbol string
	noun   string
}{
	OpAdd:         {"add", "+", "Sum"},
	OpSubtract:    {"subtract", "-", "Difference"},
	OpMultiply:    {"multiply", "*", "Product"},
	OpDivide:      {"divide", "/", "Quotient"},
	OpFloorDivide: {"floordiv", "//", "Floor quotient"},
}

var opAliases = map[string]Op{
	"add": OpAdd, "plus": OpAdd, "+": OpAdd,
	"subtract": OpSubtract, "sub": OpSubtract, "minus": OpSubtract, "-": OpSubtract,
	"multiply": OpMultiply, "mul": OpMultiply, "times": OpMultiply, "x": OpMultiply, "*": OpMultiply,
	"divide": OpDivide, "div": OpDivide, "/": OpDivide,
	"floordiv": OpFloorDivide, "floor_division": OpFloorDivide, "floor": OpFloorDivide, "//": OpFloorDivide,
}

// ParseOp resolves an operation from its name, an alias or its symbol.
func ParseOp(s string) (Op, error) {
	op, ok := opAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown operator %q", s)
	}
	return op, nil
}

// String returns the canonical name of the operation.
func (o Op) String() string {
	if info, ok := opInfo[o]; ok {
		return info.name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Symbol returns the infix symbol of the operation.
func (o Op) Symbol() string {
	if info, ok := opInfo[o]; ok {
		return info.symbol
	}
	return "?"
}

// Noun names the result of the operation, as in "Sum of 5 and 3".
func (o Op) Noun() string {
	if info, ok := opInfo[o]; ok {
		return info.noun
	}
	return "Result"
}

// Next returns the operation after o in Ops, wrapping around.
func (o Op) Next() Op {
	return Ops[(o.index()+1)%len(Ops)]
}

// Prev returns the operation before o in Ops, wrapping around.
func (o Op) Prev() Op {
	return Ops[(o.index()+len(Ops)-1)%len(Ops)]
}

func (o Op) index() int {
	for i, op := range Ops {
		if op == o {
			return i
		}
	}
	return 0
}

// Apply evaluates op on two runtime values. Integer operands stay integers
// except under OpDivide, which always yields a float; a float on either
// side promotes both operands to float.
func Apply(op Op, a, b Value) (Value, error) {
	if op == OpDivide {
		var (
			q   float64
			err error
		)
		if a.IsFloat() || b.IsFloat() {
			q, err = Divide(a.Float64(), b.Float64())
		} else {
			q, err = Divide(a.i, b.i)
		}
		if err != nil {
			return Value{}, err
		}
		return Float(q), nil
	}

	if a.IsFloat() || b.IsFloat() {
		r, err := apply(op, a.Float64(), b.Float64())
		if err != nil {
			return Value{}, err
		}
		return Float(r), nil
	}
	r, err := apply(op, a.i, b.i)
	if err != nil {
		return Value{}, err
	}
	return Int(r), nil
}

func apply[T int64 | float64](op Op, a, b T) (T, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpFloorDivide:
		return FloorDivide(a, b)
	default:
		return 0, fmt.Errorf("unsupported operation %v", op)
	}
}
