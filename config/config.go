// Package config loads the wxtgen project configuration (wxt.toml).
package config

import (
	"path/filepath"

	"github.com/teranos/wxtgen/alias"
	"github.com/teranos/wxtgen/buildenv"
	"github.com/teranos/wxtgen/typegen"
)

// FileName is the project configuration file searched for upward from the working directory
const FileName = "wxt.toml"

// EnvPrefix namespaces environment overrides (WXTGEN_SRC_DIR, WXTGEN_BUILD_BROWSER, ...)
const EnvPrefix = "WXTGEN"

// Config represents a wxtgen project
type Config struct {
	// Root is the project root. Empty means the directory holding wxt.toml,
	// or the working directory when there is none.
	Root string `mapstructure:"root" toml:"root,omitempty" json:"root,omitempty" yaml:"root,omitempty" comment:"Project root; defaults to the directory holding this file"`

	SrcDir         string `mapstructure:"src_dir" toml:"src_dir" json:"src_dir" yaml:"src_dir" comment:"Source directory, relative to root"`
	EntrypointsDir string `mapstructure:"entrypoints_dir" toml:"entrypoints_dir" json:"entrypoints_dir" yaml:"entrypoints_dir" comment:"Relative to src_dir"`
	LocalesDir     string `mapstructure:"locales_dir" toml:"locales_dir" json:"locales_dir" yaml:"locales_dir" comment:"Relative to src_dir"`
	PublicDir      string `mapstructure:"public_dir" toml:"public_dir" json:"public_dir" yaml:"public_dir" comment:"Relative to src_dir"`
	OutDir         string `mapstructure:"out_dir" toml:"out_dir" json:"out_dir" yaml:"out_dir" comment:"Generated types and tsconfig.json, relative to root"`
	OutputDir      string `mapstructure:"output_dir" toml:"output_dir" json:"output_dir" yaml:"output_dir" comment:"Build output excluded from type checking, relative to root"`

	Manifest ManifestConfig      `mapstructure:"manifest" toml:"manifest" json:"manifest" yaml:"manifest"`
	Build    buildenv.Context    `mapstructure:"build" toml:"build" json:"build" yaml:"build"`
	Imports  ImportsConfig       `mapstructure:"imports" toml:"imports" json:"imports" yaml:"imports"`
	Log      LogConfig           `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Aliases  []alias.Declaration `mapstructure:"alias" toml:"alias,omitempty" json:"alias,omitempty" yaml:"alias,omitempty" comment:"Import aliases in declaration order; @ ~ @@ ~~ are reserved"`

	// File is the configuration file that was read, if any
	File string `mapstructure:"-" toml:"-" json:"-" yaml:"-"`
}

// ManifestConfig holds the manifest fields the generator reads
type ManifestConfig struct {
	DefaultLocale string `mapstructure:"default_locale" toml:"default_locale" json:"default_locale" yaml:"default_locale" comment:"Locale whose messages type browser.i18n.getMessage; empty for built-ins only"`
}

// ImportsConfig controls types/imports.d.ts
type ImportsConfig struct {
	Disabled bool             `mapstructure:"disabled" toml:"disabled" json:"disabled" yaml:"disabled"`
	Extra    []typegen.Import `mapstructure:"extra" toml:"extra,omitempty" json:"extra,omitempty" yaml:"extra,omitempty"`
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// SrcPath returns the absolute source directory
func (c *Config) SrcPath() string {
	return join(c.Root, c.SrcDir)
}

// EntrypointsPath returns the absolute entrypoints directory
func (c *Config) EntrypointsPath() string {
	return join(c.SrcPath(), c.EntrypointsDir)
}

// LocalesPath returns the absolute locales directory
func (c *Config) LocalesPath() string {
	return join(c.SrcPath(), c.LocalesDir)
}

// PublicPath returns the absolute public directory
func (c *Config) PublicPath() string {
	return join(c.SrcPath(), c.PublicDir)
}

// OutPath returns the absolute generated-output directory
func (c *Config) OutPath() string {
	return join(c.Root, c.OutDir)
}

func join(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
