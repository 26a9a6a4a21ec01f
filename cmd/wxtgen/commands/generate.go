package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wxtgen/artifact"
	"github.com/teranos/wxtgen/config"
	"github.com/teranos/wxtgen/display"
	"github.com/teranos/wxtgen/logger"
	"github.com/teranos/wxtgen/typesdir"
)

// GenerateCmd writes the declaration files
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate type declarations and tsconfig.json",
	Long: `Discover entrypoints, load the default locale and write the generated files
into out_dir (default .wxt/).

Files whose content did not change are left untouched. Every file is staged
before any is replaced, so a failed pass leaves the previous files in place.

Examples:
  wxtgen generate
  wxtgen generate --root examples/demo
  WXTGEN_SRC_DIR=src wxtgen generate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		rendered, result, err := generate(commandContext(cmd), cfg)
		if err != nil {
			return err
		}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(cmd.OutOrStdout(), result)
		}
		if len(result.Written) == 0 {
			pterm.Success.Printf("Types are up to date (%s)\n", cfg.OutPath())
		} else {
			pterm.Success.Printf("Generated %d file(s) in %s\n", len(result.Written), cfg.OutPath())
		}
		writeDetails(cmd.OutOrStdout(), verbosity(cmd), rendered, result)
		return nil
	},
}

func init() {
	GenerateCmd.Flags().BoolP("json", "j", false, "Print the written/unchanged file lists as JSON")
}

// generate renders and writes every artifact for cfg
func generate(ctx context.Context, cfg *config.Config) (*typesdir.Result, *artifact.WriteResult, error) {
	rendered, err := render(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	written, err := artifact.NewWriter(logger.ComponentLogger("artifact")).WriteAll(ctx, cfg.OutPath(), rendered.Artifacts)
	if err != nil {
		return nil, nil, err
	}
	return rendered, written, nil
}

// writeDetails prints the parts of a generate run enabled by the -v count
func writeDetails(w io.Writer, v int, rendered *typesdir.Result, written *artifact.WriteResult) {
	if logger.ShouldOutput(v, logger.OutputArtifact) {
		for _, p := range written.Written {
			fmt.Fprintf(w, "  written   %s\n", p)
		}
		for _, p := range written.Unchanged {
			fmt.Fprintf(w, "  unchanged %s\n", p)
		}
	}

	if logger.ShouldOutput(v, logger.OutputDiscovery) {
		fmt.Fprintf(w, "public paths: %s\n", strings.Join(rendered.PublicPaths, " "))
		if rendered.Catalog != nil {
			fmt.Fprintf(w, "messages: %s\n", strings.Join(rendered.Catalog.Keys(), " "))
		}
	}

	if logger.ShouldOutput(v, logger.OutputDecisions) {
		for _, decl := range rendered.SkippedAliases {
			fmt.Fprintf(w, "alias %q -> %q ignored\n", decl.Token, decl.Target)
		}
	}

	if logger.ShouldOutput(v, logger.OutputDataDump) {
		for _, a := range rendered.Artifacts {
			fmt.Fprintf(w, "--- %s\n%s\n", a.Path, a.Content)
		}
	}
}

func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}
