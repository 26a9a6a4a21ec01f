package commands

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wxtgen/artifact"
	"github.com/teranos/wxtgen/config"
	"github.com/teranos/wxtgen/display"
)

// CheckCmd checks if generated declarations are up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated declarations are up to date",
	Long: `Render the declarations in memory and compare them byte-for-byte with out_dir.
Nothing is written.

Exit codes:
  0 - Declarations are up to date
  1 - Declarations are out of date (files listed)
  2 - Error during check

Examples:
  wxtgen check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		result, err := check(commandContext(cmd), cfg)
		if err != nil {
			return err
		}

		if display.ShouldOutputJSON(cmd) {
			if err := display.OutputJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			return artifact.StaleError(result)
		}

		if result.UpToDate {
			pterm.Success.Println("Types are up to date")
			return nil
		}

		pterm.Error.Println("Types are out of date")
		for _, p := range result.Missing {
			pterm.Printf("  %s %s\n", pterm.Yellow("missing  "), p)
		}
		for _, p := range result.Different {
			pterm.Printf("  %s %s\n", pterm.Red("different"), p)
		}
		return artifact.StaleError(result)
	},
}

func init() {
	CheckCmd.Flags().BoolP("json", "j", false, "Print the check result as JSON")
}

func check(ctx context.Context, cfg *config.Config) (*artifact.CheckResult, error) {
	rendered, err := render(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return artifact.Check(cfg.OutPath(), rendered.Artifacts)
}
