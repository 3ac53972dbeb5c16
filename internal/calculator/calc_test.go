package calculator

import (
	"errors"
	"math"
	"testing"
	"testing/quick"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive numbers", 3, 5, 8},
		{"zeros", 0, 0, 0},
		{"negative and positive", -1, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Add(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Add(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}

	if got := Add(0.5, 0.25); got != 0.75 {
		t.Errorf("Add(0.5, 0.25) = %v, want 0.75", got)
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive result", 10, 4, 6},
		{"zeros", 0, 0, 0},
		{"negative result", 0, 5, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Subtract(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Subtract(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive numbers", 3, 7, 21},
		{"negative and positive", -1, 5, -5},
		{"zero on the left", 0, 5, 0},
		{"zero on the right", 5, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Multiply(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Multiply(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected float64
	}{
		{"exact", 10, 2, 5},
		{"exact again", 9, 3, 3},
		{"fractional", 5, 3, 5.0 / 3.0},
		{"negative", -7, 2, -3.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Divide(tc.a, tc.b)
			if err != nil {
				t.Fatalf("Divide(%d, %d) unexpected error: %v", tc.a, tc.b, err)
			}
			if result != tc.expected {
				t.Errorf("Divide(%d, %d) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []int{5, 0, -3} {
		_, err := Divide(a, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("Divide(%d, 0) error = %v, want ErrDivisionByZero", a, err)
		}
		var domainErr *DomainError
		if !errors.As(err, &domainErr) {
			t.Fatalf("Divide(%d, 0) error is %T, want *DomainError", a, err)
		}
		if domainErr.Op != "divide" {
			t.Errorf("expected op divide, got %q", domainErr.Op)
		}
	}

	if _, err := Divide(1.5, 0.0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Divide(1.5, 0.0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestFloorDivide(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive", 7, 2, 3},
		{"negative dividend", -7, 2, -4},
		{"negative divisor", 7, -2, -4},
		{"both negative", -7, -2, 3},
		{"exact negative", -6, 2, -3},
		{"zero dividend", 0, 3, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := FloorDivide(tc.a, tc.b)
			if err != nil {
				t.Fatalf("FloorDivide(%d, %d) unexpected error: %v", tc.a, tc.b, err)
			}
			if result != tc.expected {
				t.Errorf("FloorDivide(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestFloorDivideFloat(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"fractional dividend", 7.5, 2, 3},
		{"negative dividend", -7, 2, -4},
		{"negative divisor", 7, -2, -4},
		{"inexact divisor tenth", 1, 0.1, 9},
		{"inexact divisor fifth", 1, 0.2, 4},
		{"negative inexact divisor", -1, 0.1, -10},
		{"infinite divisor", 5, math.Inf(1), 0},
		{"negative over infinite divisor", -5, math.Inf(1), -1},
		{"large exact", 1e18, 3, 333333333333333312},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := FloorDivide(tc.a, tc.b)
			if err != nil {
				t.Fatalf("FloorDivide(%v, %v) unexpected error: %v", tc.a, tc.b, err)
			}
			if result != tc.expected {
				t.Errorf("FloorDivide(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}

	got, err := FloorDivide(-0.5, 3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1 {
		t.Errorf("FloorDivide(-0.5, 3.0) = %v, want -1", got)
	}

	zero, err := FloorDivide(0.0, -3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zero != 0 || !math.Signbit(zero) {
		t.Errorf("FloorDivide(0.0, -3.0) = %v, want -0", zero)
	}

	got32, err := FloorDivide(float32(-1), float32(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got32 != -1 {
		t.Errorf("FloorDivide(float32(-1), 4) = %v, want -1", got32)
	}
}

func TestFloorDivideUnsigned(t *testing.T) {
	got, err := FloorDivide(uint8(7), uint8(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("FloorDivide(uint8(7), 2) = %d, want 3", got)
	}
}

func TestFloorDivideByZero(t *testing.T) {
	_, err := FloorDivide(5, 0)
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("FloorDivide(5, 0) error = %v, want *DomainError", err)
	}
	if domainErr.Op != "floordiv" {
		t.Errorf("expected op floordiv, got %q", domainErr.Op)
	}
	if err.Error() != "floordiv: division by zero" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if _, err := FloorDivide(5.0, 0.0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("FloorDivide(5.0, 0.0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestScenarioFiveAndThree(t *testing.T) {
	if got := Add(5, 3); got != 8 {
		t.Errorf("Add(5, 3) = %d, want 8", got)
	}
	if got := Subtract(5, 3); got != 2 {
		t.Errorf("Subtract(5, 3) = %d, want 2", got)
	}
	if got := Multiply(5, 3); got != 15 {
		t.Errorf("Multiply(5, 3) = %d, want 15", got)
	}
	got, err := Divide(5, 3)
	if err != nil {
		t.Fatalf("Divide(5, 3) unexpected error: %v", err)
	}
	if math.Abs(got-1.6667) > 1e-4 {
		t.Errorf("Divide(5, 3) = %v, want about 1.6667", got)
	}
}

func TestProperties(t *testing.T) {
	t.Run("add commutes", func(t *testing.T) {
		f := func(a, b int64) bool { return Add(a, b) == Add(b, a) }
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
		g := func(a, b float64) bool { return Add(a, b) == Add(b, a) }
		if err := quick.Check(g, nil); err != nil {
			t.Error(err)
		}
	})

	t.Run("subtract is antisymmetric", func(t *testing.T) {
		f := func(a, b int64) bool { return Subtract(a, b) == -Subtract(b, a) }
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
		g := func(a, b float64) bool { return Subtract(a, b) == -Subtract(b, a) }
		if err := quick.Check(g, nil); err != nil {
			t.Error(err)
		}
	})

	t.Run("multiply commutes", func(t *testing.T) {
		f := func(a, b int64) bool { return Multiply(a, b) == Multiply(b, a) }
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
		g := func(a, b float64) bool { return Multiply(a, b) == Multiply(b, a) }
		if err := quick.Check(g, nil); err != nil {
			t.Error(err)
		}
	})

	t.Run("divide undoes multiply", func(t *testing.T) {
		f := func(a, b int32) bool {
			if b == 0 {
				return true
			}
			x, y := float64(a), float64(b)
			q, err := Divide(Multiply(x, y), y)
			return err == nil && math.Abs(q-x) <= 1e-9*math.Max(1, math.Abs(x))
		}
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
	})

	t.Run("divide by zero always fails", func(t *testing.T) {
		f := func(a float64) bool {
			_, err := Divide(a, 0)
			return errors.Is(err, ErrDivisionByZero)
		}
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
	})
}
