// Package typesdir runs a generation pass: project snapshot in, artifacts out.
package typesdir

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/wxtgen/alias"
	"github.com/teranos/wxtgen/artifact"
	"github.com/teranos/wxtgen/buildenv"
	"github.com/teranos/wxtgen/entrypoint"
	"github.com/teranos/wxtgen/errors"
	"github.com/teranos/wxtgen/locale"
	"github.com/teranos/wxtgen/logger"
	"github.com/teranos/wxtgen/publicpath"
	"github.com/teranos/wxtgen/typegen"
)

// Input is a fully-specified project snapshot.
// Directories are relative to Root unless absolute; empty ones take the defaults.
type Input struct {
	Root      string
	SrcDir    string
	OutDir    string
	OutputDir string

	Aliases     []alias.Declaration
	Entrypoints []entrypoint.Entrypoint

	// Locale is the parsed default-locale resource; nil means built-ins only
	Locale        *locale.Tree
	DefaultLocale string

	// Imports are extra auto-imports merged over the defaults
	Imports         []typegen.Import
	ImportsDisabled bool
}

// Result is the outcome of one pass
type Result struct {
	Artifacts   []artifact.Artifact
	PublicPaths []string
	Aliases     []alias.Entry
	Catalog     *locale.Catalog
	// SkippedAliases were declared but collide with a reserved or earlier token
	SkippedAliases []alias.Declaration
}

// Generator derives facts from an Input and renders them
type Generator struct {
	logger *zap.SugaredLogger
}

// NewGenerator creates a generator. A nil logger falls back to the global one.
func NewGenerator(l *zap.SugaredLogger) *Generator {
	return &Generator{logger: logger.OrComponent(l, "typesdir")}
}

// Generate runs a full pass. It returns every applicable artifact or an error, never a subset.
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "generation cancelled")
	}
	start := time.Now()
	in = in.withDefaults()

	dirs := alias.Dirs{Root: in.Root, SrcDir: in.SrcDir, OutDir: in.OutDir}
	aliases := alias.Resolve(dirs, in.Aliases)
	skipped := alias.Skipped(in.Aliases)
	for _, decl := range skipped {
		g.logger.Warnw("Alias ignored",
			logger.FieldAlias, decl.Token,
			"target", decl.Target,
			"reason", skipReason(decl))
	}

	paths, err := publicpath.Build(in.Entrypoints)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive public paths")
	}

	catalog := locale.Build(in.Locale, in.DefaultLocale)

	var imports []typegen.Import
	if !in.ImportsDisabled {
		imports = typegen.MergeImports(typegen.DefaultImports, in.Imports)
	}

	artifacts, err := typegen.Render(typegen.Facts{
		HasEntrypoints: len(in.Entrypoints) > 0,
		PublicPaths:    paths,
		Catalog:        catalog,
		Aliases:        aliases,
		Imports:        imports,
		Globals:        buildenv.Globals(),
		RootDir:        alias.Rel(dirs, "."),
		OutputDir:      alias.Rel(dirs, in.OutputDir),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render declarations")
	}

	g.logger.Infow("Declarations rendered",
		logger.FieldCount, len(artifacts),
		logger.FieldEntrypoint, len(in.Entrypoints),
		"public_paths", len(paths),
		"messages", catalog.Len(),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return &Result{
		Artifacts:      artifacts,
		PublicPaths:    paths,
		Aliases:        aliases,
		Catalog:        catalog,
		SkippedAliases: skipped,
	}, nil
}

func (in Input) withDefaults() Input {
	if in.Root == "" {
		in.Root = "."
	}
	if in.SrcDir == "" {
		in.SrcDir = "."
	}
	if in.OutDir == "" {
		in.OutDir = ".wxt"
	}
	if in.OutputDir == "" {
		in.OutputDir = ".output"
	}
	return in
}

func skipReason(decl alias.Declaration) string {
	switch {
	case decl.Token == "":
		return "empty token"
	case alias.IsReserved(decl.Token):
		return "reserved"
	default:
		return "duplicate"
	}
}
