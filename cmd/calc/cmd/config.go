package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/config"
	"github.com/pengelbrecht/calc/internal/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create display settings",
	Long: `Show or create the display settings file.

Settings only change how results are printed:
  precision  decimal places for float results (-1 = shortest form)
  boxed      draw the demo report inside a border`,
	Args: usageArgs(cobra.NoArgs),
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective display settings",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runConfigInit,
}

var (
	configShowJSON  bool
	configInitForce bool
)

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output as JSON")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if configShowJSON {
		payload := map[string]any{
			"path":      path,
			"precision": cfg.GetPrecision(),
			"boxed":     cfg.IsBoxed(),
		}
		enc := json.NewEncoder(out)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	fmt.Fprintf(out, "%s  %s\n", styles.RenderLabel("Path:"), styles.RenderDim(path))
	fmt.Fprintf(out, "%s  %d\n", styles.RenderLabel("Precision:"), cfg.GetPrecision())
	fmt.Fprintf(out, "%s  %t\n", styles.RenderLabel("Boxed:"), cfg.IsBoxed())
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
	}

	precision := config.DefaultPrecision
	boxed := false
	defaults := config.Default()
	defaults.Precision = &precision
	defaults.Boxed = &boxed
	if err := config.Save(path, defaults); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
