package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/calc/internal/calculator"
)

func TestRenderExpression(t *testing.T) {
	cases := []struct {
		a, b, r string
		op      calculator.Op
		want    string
	}{
		{"5", "3", "8", calculator.OpAdd, "5 + 3 = 8"},
		{"7", "2", "3", calculator.OpFloorDivide, "7 // 2 = 3"},
		{"-1", "0.1", "-10.0", calculator.OpFloorDivide, "-1 // 0.1 = -10.0"},
	}

	for _, tc := range cases {
		got := ansi.Strip(RenderExpression(tc.a, tc.op, tc.b, tc.r))
		if got != tc.want {
			t.Errorf("RenderExpression = %q, want %q", got, tc.want)
		}
	}
}

func TestRenderOperator(t *testing.T) {
	if got := ansi.Strip(RenderOperator(calculator.OpMultiply)); got != "*" {
		t.Errorf("RenderOperator(multiply) = %q, want *", got)
	}
}
