package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/wxtgen/errors"
)

// Load finds wxt.toml by walking up from dir, layers environment overrides on
// top and resolves Root to an absolute path. A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := newViper()

	path := FindProjectConfig(dir)
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	cfg.File = path

	base := dir
	if path != "" {
		base = filepath.Dir(path)
	}
	if err := cfg.resolveRoot(base); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults but don't bind environment variables for this specific load
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", configPath)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	cfg.File = configPath

	if err := cfg.resolveRoot(filepath.Dir(configPath)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithViper loads configuration using a provided Viper instance.
// Root is left as configured.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// FindProjectConfig searches for wxt.toml by walking up the directory tree from dir.
// Returns the path to the first file found, or empty string if none found.
func FindProjectConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	// WXTGEN_BUILD_BROWSER -> build.browser
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	return v
}

// resolveRoot makes Root absolute; a relative root is taken from base
func (c *Config) resolveRoot(base string) error {
	root := c.Root
	if root == "" {
		root = base
	} else if !filepath.IsAbs(root) {
		root = filepath.Join(base, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve project root %s", root)
	}
	c.Root = abs
	return nil
}
