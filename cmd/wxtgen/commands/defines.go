package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/wxtgen/buildenv"
	"github.com/teranos/wxtgen/errors"
)

var (
	definesFormat          string
	definesBrowser         string
	definesManifestVersion int
	definesCommand         string
	definesEntrypoint      string
)

// DefinesCmd prints the values of the build-time constants
var DefinesCmd = &cobra.Command{
	Use:   "defines",
	Short: "Print build-time constant values for a bundler",
	Long: `Print the values declared in types/globals.d.ts for one build, ready to be
passed to a bundler's define option. Flags override the [build] section.

Formats:
  json - one JSON object, keys in declaration order (default)
  env  - NAME=VALUE lines
  list - JSON array of {name, value}

Examples:
  wxtgen defines
  wxtgen defines --browser firefox --command serve --entrypoint popup
  wxtgen defines --format env`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx := cfg.Build
		if cmd.Flags().Changed("browser") {
			ctx.Browser = definesBrowser
			if !cmd.Flags().Changed("manifest-version") {
				ctx.ManifestVersion = 0
			}
		}
		if cmd.Flags().Changed("manifest-version") {
			ctx.ManifestVersion = definesManifestVersion
		}
		if cmd.Flags().Changed("command") {
			ctx.Command = definesCommand
		}
		if cmd.Flags().Changed("entrypoint") {
			ctx.Entrypoint = definesEntrypoint
		}

		defines, err := buildenv.Defines(ctx)
		if err != nil {
			return err
		}
		return writeDefines(cmd.OutOrStdout(), defines, definesFormat)
	},
}

func init() {
	DefinesCmd.Flags().StringVarP(&definesFormat, "format", "f", "json", "Output format: json, env, list")
	DefinesCmd.Flags().StringVar(&definesBrowser, "browser", "", "Target browser (chrome, firefox, safari, edge, opera)")
	DefinesCmd.Flags().IntVar(&definesManifestVersion, "manifest-version", 0, "Manifest version (2 or 3; 0 = browser default)")
	DefinesCmd.Flags().StringVar(&definesCommand, "command", "", "Build command (build or serve)")
	DefinesCmd.Flags().StringVar(&definesEntrypoint, "entrypoint", "", "Entrypoint being bundled")
}

// writeDefines prints defines in the requested format. Values are already JSON literals.
func writeDefines(w io.Writer, defines []buildenv.Define, format string) error {
	switch format {
	case "json":
		fmt.Fprintln(w, "{")
		for i, d := range defines {
			sep := ","
			if i == len(defines)-1 {
				sep = ""
			}
			fmt.Fprintf(w, "  %s: %s%s\n", strconv.Quote(d.Name), d.Value, sep)
		}
		fmt.Fprintln(w, "}")
	case "env":
		for _, d := range defines {
			fmt.Fprintf(w, "%s=%s\n", d.Name, d.Value)
		}
	case "list":
		data, err := json.MarshalIndent(defines, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to format defines")
		}
		fmt.Fprintln(w, string(data))
	default:
		return errors.NewInvalidRequestError("unsupported format: %s (supported: json, env, list)", format)
	}
	return nil
}
