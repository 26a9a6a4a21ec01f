package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/teranos/wxtgen/config"
	"github.com/teranos/wxtgen/errors"
	"github.com/teranos/wxtgen/logger"
	"github.com/teranos/wxtgen/typesdir"
)

// loadConfig resolves the project configuration from the --root / --config flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	root, _ := cmd.Flags().GetString("root")
	file, _ := cmd.Flags().GetString("config")
	if root == "" {
		root = "."
	}

	var cfg *config.Config
	var err error
	if file != "" {
		cfg, err = config.LoadFromFile(file)
	} else {
		cfg, err = config.Load(root)
	}
	if err != nil {
		return nil, err
	}

	// log.json in wxt.toml switches to JSON logs when the flag did not
	if cfg.Log.JSON && !logger.JSONOutput {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(true, verbosity); err != nil {
			return nil, errors.Wrap(err, "failed to initialize logger")
		}
	}

	logger.Logger.Debugw("Configuration loaded",
		logger.FieldRoot, cfg.Root,
		logger.FieldFile, cfg.File,
		logger.FieldSrcDir, cfg.SrcDir,
		logger.FieldOutDir, cfg.OutDir)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration %s", cfg.File)
	}
	return cfg, nil
}

// render runs discovery, locale loading and a generation pass for cfg
func render(ctx context.Context, cfg *config.Config) (*typesdir.Result, error) {
	in, err := typesdir.InputFromConfig(ctx, cfg, logger.ComponentLogger("typesdir"))
	if err != nil {
		return nil, err
	}
	return typesdir.NewGenerator(logger.ComponentLogger("typesdir")).Generate(ctx, in)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
