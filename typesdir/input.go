package typesdir

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/wxtgen/config"
	"github.com/teranos/wxtgen/entrypoint"
	"github.com/teranos/wxtgen/errors"
	"github.com/teranos/wxtgen/locale"
	"github.com/teranos/wxtgen/logger"
)

// InputFromConfig discovers entrypoints and loads the default locale for cfg.
// The two reads are independent and run concurrently. A configured default
// locale without a resource file yields built-ins only.
func InputFromConfig(ctx context.Context, cfg *config.Config, l *zap.SugaredLogger) (Input, error) {
	log := logger.OrComponent(l, "typesdir")

	in := Input{
		Root:            cfg.Root,
		SrcDir:          cfg.SrcDir,
		OutDir:          cfg.OutDir,
		OutputDir:       cfg.OutputDir,
		Aliases:         cfg.Aliases,
		DefaultLocale:   cfg.Manifest.DefaultLocale,
		Imports:         cfg.Imports.Extra,
		ImportsDisabled: cfg.Imports.Disabled,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entrypoints, err := entrypoint.Discover(cfg.SrcPath(), cfg.EntrypointsDir)
		if err != nil {
			return errors.Wrap(err, "failed to discover entrypoints")
		}
		for _, ep := range entrypoints {
			log.Debugw("Entrypoint discovered",
				logger.FieldEntrypoint, ep.Name,
				logger.FieldKind, ep.Kind,
				logger.FieldFile, ep.Path)
		}
		in.Entrypoints = entrypoints
		return nil
	})

	g.Go(func() error {
		tree, err := loadDefaultLocale(ctx, cfg, log)
		if err != nil {
			return err
		}
		in.Locale = tree
		return nil
	})

	if err := g.Wait(); err != nil {
		return Input{}, err
	}
	return in, nil
}

func loadDefaultLocale(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*locale.Tree, error) {
	name := cfg.Manifest.DefaultLocale
	if name == "" {
		return nil, nil
	}

	path, err := locale.FindDefaultFile(cfg.LocalesPath(), cfg.PublicPath(), name)
	if err != nil {
		if errors.IsNotFoundError(err) {
			log.Warnw("Default locale has no resource file; only built-in messages are typed",
				logger.FieldLocale, name,
				logger.FieldError, err)
			return nil, nil
		}
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree, err := locale.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Infow("Locale loaded",
		logger.FieldLocale, name,
		logger.FieldFile, path,
		logger.FieldCount, tree.Len())
	return tree, nil
}
