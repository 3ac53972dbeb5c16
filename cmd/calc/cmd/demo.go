package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/config"
	"github.com/pengelbrecht/calc/internal/styles"
)

var demoCmd = &cobra.Command{
	Use:   "demo [a b]",
	Short: "Run every operation on two numbers",
	Long: `Run add, subtract, multiply and divide on two numbers and print one
line per result. Without arguments the operands are 5 and 3.

If b is zero the first three lines are printed before the division error.

Examples:
  calc demo
  calc demo 10 4
  calc demo --boxed`,
	Args: usageArgs(func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
		}
		return nil
	}),
	RunE: runDemo,
}

var (
	demoJSON      bool
	demoBoxed     bool
	demoPrecision int
)

func init() {
	demoCmd.Flags().BoolVar(&demoJSON, "json", false, "output as JSON")
	demoCmd.Flags().BoolVar(&demoBoxed, "boxed", false, "draw the report inside a border")
	demoCmd.Flags().IntVarP(&demoPrecision, "precision", "p", config.DefaultPrecision, "decimal places for float results (-1 = shortest)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	a, b := calculator.Int(5), calculator.Int(3)
	if len(args) == 2 {
		var err error
		a, b, err = parseOperands(args[0], args[1])
		if err != nil {
			return err
		}
	}

	lines, demoErr := calculator.Demo(a, b)

	out := cmd.OutOrStdout()
	if demoJSON {
		if demoErr != nil {
			return demoErr
		}
		enc := json.NewEncoder(out)
		if err := enc.Encode(lines); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	precision, err := resolvePrecision(cmd, demoPrecision)
	if err != nil {
		return err
	}

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, line.Label()+styles.RenderResult(line.Result.Format(precision)))
	}

	boxed := demoBoxed || cfg.IsBoxed()
	if boxed && len(rendered) > 0 {
		fmt.Fprintln(out, styles.RenderBox(strings.Join(rendered, "\n")))
	} else {
		for _, line := range rendered {
			fmt.Fprintln(out, line)
		}
	}
	return demoErr
}
