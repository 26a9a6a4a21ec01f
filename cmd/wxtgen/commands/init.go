package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wxtgen/config"
)

var initForce bool

// InitCmd writes a default wxt.toml
var InitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default wxt.toml",
	Long: `Write a commented wxt.toml with every option at its default value.

An existing file is kept unless --force is given; the replaced file is
rotated into .back1/.back2/.back3.

Examples:
  wxtgen init
  wxtgen init extension --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		path, err := config.WriteDefault(dir, initForce)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	InitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing wxt.toml (keeps a backup)")
}
