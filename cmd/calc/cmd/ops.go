package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/config"
	"github.com/pengelbrecht/calc/internal/styles"
)

var (
	opJSON      bool
	opPrecision int
)

var opCommands = []struct {
	op      calculator.Op
	aliases []string
	short   string
}{
	{calculator.OpAdd, []string{"plus"}, "Print a + b"},
	{calculator.OpSubtract, []string{"sub", "minus"}, "Print a - b"},
	{calculator.OpMultiply, []string{"mul", "times"}, "Print a * b"},
	{calculator.OpDivide, []string{"div"}, "Print a / b (always a float; fails when b is 0)"},
	{calculator.OpFloorDivide, []string{"floor"}, "Print a // b rounded toward negative infinity (fails when b is 0)"},
}

var evalCmd = &cobra.Command{
	Use:   "eval <a> <op> <b>",
	Short: "Evaluate a single infix expression",
	Long: `Evaluate a single infix expression.

The operator may be a symbol (+ - * / //) or a name (add, sub, mul, div,
floordiv). Quote * so the shell does not expand it.

Examples:
  calc eval 5 + 3
  calc eval 7 // 2
  calc eval 5 '*' 3 --json`,
	Args: usageArgs(cobra.ExactArgs(3)),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := calculator.ParseOp(args[1])
		if err != nil {
			return &UsageError{Err: err}
		}
		return runOp(cmd, op, args[0], args[2])
	},
}

func init() {
	for _, entry := range opCommands {
		op := entry.op
		c := &cobra.Command{
			Use:     op.String() + " <a> <b>",
			Aliases: entry.aliases,
			Short:   entry.short,
			Args:    usageArgs(cobra.ExactArgs(2)),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOp(cmd, op, args[0], args[1])
			},
		}
		addOpFlags(c)
		rootCmd.AddCommand(c)
	}

	addOpFlags(evalCmd)
	rootCmd.AddCommand(evalCmd)
}

func addOpFlags(c *cobra.Command) {
	c.Flags().BoolVar(&opJSON, "json", false, "output as JSON")
	c.Flags().IntVarP(&opPrecision, "precision", "p", config.DefaultPrecision, "decimal places for float results (-1 = shortest)")
}

type opResult struct {
	Op     calculator.Op    `json:"op"`
	A      calculator.Value `json:"a"`
	B      calculator.Value `json:"b"`
	Result calculator.Value `json:"result"`
}

func runOp(cmd *cobra.Command, op calculator.Op, rawA, rawB string) error {
	a, b, err := parseOperands(rawA, rawB)
	if err != nil {
		return err
	}

	result, err := calculator.Apply(op, a, b)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opJSON {
		enc := json.NewEncoder(out)
		if err := enc.Encode(opResult{Op: op, A: a, B: b, Result: result}); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	precision, err := resolvePrecision(cmd, opPrecision)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, styles.RenderResult(result.Format(precision)))
	return nil
}

func parseOperands(rawA, rawB string) (calculator.Value, calculator.Value, error) {
	a, err := calculator.ParseValue(rawA)
	if err != nil {
		return calculator.Value{}, calculator.Value{}, &UsageError{Err: fmt.Errorf("operand a: %w", err)}
	}
	b, err := calculator.ParseValue(rawB)
	if err != nil {
		return calculator.Value{}, calculator.Value{}, &UsageError{Err: fmt.Errorf("operand b: %w", err)}
	}
	return a, b, nil
}

// resolvePrecision prefers an explicit --precision flag over the config file.
func resolvePrecision(cmd *cobra.Command, flagValue int) (int, error) {
	if !cmd.Flags().Changed("precision") {
		return cfg.GetPrecision(), nil
	}
	if err := config.ValidatePrecision(flagValue); err != nil {
		return 0, &UsageError{Err: err}
	}
	return flagValue, nil
}
