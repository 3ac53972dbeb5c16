package calculator

import "fmt"

// DemoOps are the operations shown by Demo, in order.
var DemoOps = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}

// DemoLine is one line of the demonstration report.
type DemoLine struct {
	Op     Op    `json:"op"`
	A      Value `json:"a"`
	B      Value `json:"b"`
	Result Value `json:"result"`
}

// Label returns the text before the result, e.g. "Sum of 5 and 3 is:".
func (l DemoLine) Label() string {
	return fmt.Sprintf("%s of %s and %s is:", l.Op.Noun(), l.A, l.B)
}

// String renders the line with the result in shortest form.
func (l DemoLine) String() string {
	return l.Label() + l.Result.String()
}

// Demo runs a and b through each of DemoOps. When an operation fails the
// lines computed so far are returned together with the error.
func Demo(a, b Value) ([]DemoLine, error) {
	lines := make([]DemoLine, 0, len(DemoOps))
	for _, op := range DemoOps {
		r, err := Apply(op, a, b)
		if err != nil {
			return lines, err
		}
		lines = append(lines, DemoLine{Op: op, A: a, B: b, Result: r})
	}
	return lines, nil
}
