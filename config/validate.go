package config

import (
	"github.com/teranos/wxtgen/alias"
	"github.com/teranos/wxtgen/errors"
	"github.com/teranos/wxtgen/locale"
)

// Validate checks that the configuration is usable for a generation pass
func (c *Config) Validate() error {
	if c.OutDir == "" {
		return errors.NewInvalidRequestError("out_dir cannot be empty")
	}

	// manifest_version 0 = browser default, resolved by buildenv
	build := c.Build.WithDefaults()
	if err := build.Validate(); err != nil {
		return errors.Wrap(err, "invalid [build] section")
	}

	if c.Manifest.DefaultLocale != "" {
		if _, err := locale.NormalizeTag(c.Manifest.DefaultLocale); err != nil {
			return errors.Wrap(err, "invalid manifest.default_locale")
		}
	}

	for i, decl := range c.Aliases {
		if decl.Token == "" {
			return errors.NewInvalidRequestError("alias[%d]: token cannot be empty", i)
		}
		if decl.Target == "" && !alias.IsReserved(decl.Token) {
			return errors.NewInvalidRequestError("alias %q: target cannot be empty", decl.Token)
		}
	}

	for i, imp := range c.Imports.Extra {
		if imp.Name == "" || imp.From == "" {
			return errors.NewInvalidRequestError("imports.extra[%d]: name and from are required", i)
		}
	}

	return nil
}
