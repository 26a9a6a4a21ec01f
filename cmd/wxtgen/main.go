package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/wxtgen/cmd/wxtgen/commands"
	"github.com/teranos/wxtgen/errors"
	"github.com/teranos/wxtgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "wxtgen",
	Short: "wxtgen - type declarations for web extension projects",
	Long: `wxtgen generates the TypeScript declarations and tsconfig.json a web extension
project type-checks against.

From the project's entrypoints, default-locale messages and wxt.toml it writes:
  .wxt/types/imports.d.ts   auto-imported globals
  .wxt/types/paths.d.ts     PublicPath union for browser.runtime.getURL
  .wxt/types/i18n.d.ts      getMessage overloads per message key
  .wxt/types/globals.d.ts   build-time constants
  .wxt/wxt.d.ts             references to all of the above
  .wxt/tsconfig.json        compiler options and path aliases

Available commands:
  generate - Write the declaration files
  check    - Fail when the declaration files are out of date
  defines  - Print build-time constant values for a bundler
  init     - Write a default wxt.toml
  config   - Show the resolved configuration
  version  - Show version information

Examples:
  wxtgen generate               # Generate into .wxt/
  wxtgen check                  # CI: verify .wxt/ is current
  wxtgen defines --browser firefox
  wxtgen config show --format json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON on stderr")
	rootCmd.PersistentFlags().String("root", ".", "Directory to start the wxt.toml search from")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Explicit config file (disables the upward search)")

	// Add commands
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.DefinesCmd)
	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hints)
		}
		// 1 = declarations out of date, 2 = anything else
		if errors.IsStaleError(err) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
