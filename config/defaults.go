package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/wxtgen/buildenv"
)

// Directory defaults
const (
	DefaultSrcDir         = "."
	DefaultEntrypointsDir = "entrypoints"
	DefaultLocalesDir     = "locales"
	DefaultPublicDir      = "public"
	DefaultOutDir         = ".wxt"
	DefaultOutputDir      = ".output"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("root", "")
	v.SetDefault("src_dir", DefaultSrcDir)
	v.SetDefault("entrypoints_dir", DefaultEntrypointsDir)
	v.SetDefault("locales_dir", DefaultLocalesDir)
	v.SetDefault("public_dir", DefaultPublicDir)
	v.SetDefault("out_dir", DefaultOutDir)
	v.SetDefault("output_dir", DefaultOutputDir)

	v.SetDefault("manifest.default_locale", "")

	v.SetDefault("build.browser", buildenv.BrowserChrome)
	v.SetDefault("build.manifest_version", 0) // 0 = browser default
	v.SetDefault("build.command", buildenv.CommandBuild)
	v.SetDefault("build.entrypoint", "")

	v.SetDefault("imports.disabled", false)

	v.SetDefault("log.json", false)
}

// Default returns the configuration used when no wxt.toml exists
func Default() *Config {
	return &Config{
		SrcDir:         DefaultSrcDir,
		EntrypointsDir: DefaultEntrypointsDir,
		LocalesDir:     DefaultLocalesDir,
		PublicDir:      DefaultPublicDir,
		OutDir:         DefaultOutDir,
		OutputDir:      DefaultOutputDir,
		Build: buildenv.Context{
			Browser: buildenv.BrowserChrome,
			Command: buildenv.CommandBuild,
		},
	}
}
