package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/wxtgen/config"
	"github.com/teranos/wxtgen/errors"
)

var configFormat string

// ConfigCmd groups configuration commands
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the wxtgen configuration",
	Long: `Inspect the resolved wxtgen configuration.

Configuration precedence (highest to lowest):
1. Environment variables (WXTGEN_*, e.g. WXTGEN_BUILD_BROWSER)
2. Project config (wxt.toml, searched upward from --root)
3. Built-in defaults

Examples:
  wxtgen config show                  # Show configuration as TOML
  wxtgen config show --format json    # Show configuration in JSON format`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		data, err := marshalConfig(cfg, configFormat)
		if err != nil {
			return err
		}
		if cfg.File != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "# from %s\n", cfg.File)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	ConfigCmd.AddCommand(configShowCmd)
}

func marshalConfig(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to JSON")
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to YAML")
		}
		return data, nil
	case "toml":
		return config.Marshal(cfg)
	default:
		return nil, errors.NewInvalidRequestError("unsupported format: %s (supported: toml, json, yaml)", format)
	}
}
