// Package typegen renders the generated declaration files and tsconfig.json.
//
// Every renderer is a pure function of its inputs: identical facts produce
// byte-identical text. Layout (indentation, quoting, ordering) is part of the
// output contract, so renderers write text directly rather than going through
// a general-purpose encoder.
package typegen

import (
	"strings"

	"github.com/teranos/wxtgen/alias"
	"github.com/teranos/wxtgen/artifact"
	"github.com/teranos/wxtgen/buildenv"
	"github.com/teranos/wxtgen/errors"
	"github.com/teranos/wxtgen/locale"
)

// Header opens every generated declaration file
const Header = "// Generated by wxt"

// Artifact paths, relative to the generated-output root
const (
	ImportsPath  = "types/imports.d.ts"
	PathsPath    = "types/paths.d.ts"
	I18nPath     = "types/i18n.d.ts"
	GlobalsPath  = "types/globals.d.ts"
	WxtPath      = "wxt.d.ts"
	TSConfigPath = "tsconfig.json"
)

// Facts is everything a render pass needs
type Facts struct {
	// HasEntrypoints gates paths.d.ts and i18n.d.ts
	HasEntrypoints bool
	PublicPaths    []string
	Catalog        *locale.Catalog
	Aliases        []alias.Entry
	Imports        []Import
	Globals        []buildenv.Global

	// RootDir and OutputDir are relative to the generated-output root
	RootDir   string
	OutputDir string
}

// Render produces every applicable artifact in write order.
// Public paths must already be normalized by publicpath.Build.
func Render(f Facts) ([]artifact.Artifact, error) {
	for _, p := range f.PublicPaths {
		if !strings.HasPrefix(p, "/") || !strings.HasSuffix(p, ".html") {
			return nil, errors.AssertionFailedf("public path %q is not normalized", p)
		}
	}

	globals := f.Globals
	if globals == nil {
		globals = buildenv.Globals()
	}
	catalog := f.Catalog
	if catalog == nil {
		catalog = locale.Build(nil, "")
	}
	rootDir := f.RootDir
	if rootDir == "" {
		rootDir = ".."
	}

	artifacts := []artifact.Artifact{
		{Path: ImportsPath, Content: RenderImports(f.Imports)},
	}
	if f.HasEntrypoints {
		artifacts = append(artifacts,
			artifact.Artifact{Path: PathsPath, Content: RenderPaths(f.PublicPaths)},
			artifact.Artifact{Path: I18nPath, Content: RenderI18n(catalog)},
		)
	}
	artifacts = append(artifacts,
		artifact.Artifact{Path: GlobalsPath, Content: RenderGlobals(globals)},
		artifact.Artifact{Path: WxtPath, Content: RenderAggregator()},
		artifact.Artifact{Path: TSConfigPath, Content: RenderTSConfig(f.Aliases, rootDir, f.OutputDir)},
	)
	return artifacts, nil
}
