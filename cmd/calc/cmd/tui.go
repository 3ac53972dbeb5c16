package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive calculator",
	Long: `Open an interactive calculator in the terminal.

Type the first operand, tab to the operator (arrow keys or + - * / to
change it), tab to the second operand and press enter. Esc quits.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.New(cfg.GetPrecision()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run tui: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
