// Package calculator provides basic arithmetic operations.
package calculator

import "math"

// Number is any built-in integer or floating-point type.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Add returns the sum of a and b.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a minus b.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply returns a times b.
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns the true quotient of a and b. Integer operands are not
// truncated: Divide(5, 3) is 1.666...
func Divide[T Number](a, b T) (float64, error) {
	if b == 0 {
		return 0, &DomainError{Op: "divide"}
	}
	return float64(a) / float64(b), nil
}

// FloorDivide returns the quotient of a and b rounded toward negative
// infinity. The result keeps the operand type, so float operands yield an
// integral float.
func FloorDivide[T Number](a, b T) (T, error) {
	if b == 0 {
		return 0, &DomainError{Op: "floordiv"}
	}
	if isFloat[T]() {
		return T(floorDivFloat(float64(a), float64(b))), nil
	}
	// Go integer division truncates toward zero.
	q := a / b
	if q*b != a && (a < 0) != (b < 0) {
		q--
	}
	return q, nil
}

// floorDivFloat floors the exact quotient of a and b. Flooring the rounded
// quotient a/b is wrong when b is not exactly representable: 1 // 0.1 is 9,
// not 10.
func floorDivFloat(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}

func isFloat[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}
	return false
}
