package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Basic arithmetic from the command line",
	Long: `calc adds, subtracts, multiplies and divides two numbers.

Operands are integers unless they contain a decimal point or exponent.
Division always yields a float; floordiv rounds toward negative infinity
and keeps integer operands integral.

Examples:
  calc add 5 3
  calc divide 5 3 --precision 4
  calc eval -7 // 2
  calc demo`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "display settings file (default: user config dir)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
}

// Execute runs the command tree with the given arguments (without the
// program name).
func Execute(args []string) error {
	resetFlags(rootCmd)
	rootCmd.SetArgs(operandArgs(args))
	return rootCmd.Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	loaded, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded
	return nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// UsageError marks bad invocations: wrong argument counts, unparseable
// operands and unknown flags or operators.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// IsUsageError reports whether err came from a bad invocation.
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// usageArgs wraps a cobra positional-args validator so its errors are
// reported as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// resetFlags restores every flag to its default so Execute can run more
// than once in the same process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// operandArgs moves positional arguments behind a "--" terminator when one
// of them is a negative number, so that "calc add -1 1" is not parsed as
// the shorthand flag -1. The leading command name stays in front so cobra
// can still resolve the subcommand.
func operandArgs(args []string) []string {
	negative := false
	for _, a := range args {
		if a == "--" {
			return args
		}
		if isNegativeNumber(a) {
			negative = true
		}
	}
	if !negative {
		return args
	}

	var flags, operands []string
	command := ""
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case isNegativeNumber(a) || a == "-" || !strings.HasPrefix(a, "-"):
			if command == "" && !isNegativeNumber(a) {
				command = a
				continue
			}
			operands = append(operands, a)
		default:
			flags = append(flags, a)
			if !strings.Contains(a, "=") && takesValue(rootCmd, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}

	out := make([]string, 0, len(args)+1)
	if command != "" {
		out = append(out, command)
	}
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, operands...)
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	_, err := calculator.ParseValue(s)
	return err == nil
}

// takesValue reports whether the flag token needs a separate value
// argument, looking it up anywhere in the command tree.
func takesValue(c *cobra.Command, token string) bool {
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(token, "--"):
		name := strings.TrimPrefix(token, "--")
		f = c.Flags().Lookup(name)
		if f == nil {
			f = c.PersistentFlags().Lookup(name)
		}
	case len(token) == 2:
		f = c.Flags().ShorthandLookup(token[1:])
		if f == nil {
			f = c.PersistentFlags().ShorthandLookup(token[1:])
		}
	}
	if f != nil {
		return f.NoOptDefVal == ""
	}
	for _, sub := range c.Commands() {
		if takesValue(sub, token) {
			return true
		}
	}
	return false
}
