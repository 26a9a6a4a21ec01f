package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/wxtgen/errors"
)

const header = "# wxtgen project configuration\n# Environment overrides use the WXTGEN_ prefix (WXTGEN_BUILD_BROWSER=firefox).\n\n"

// Marshal renders cfg as TOML with field comments
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return data, nil
}

// WriteDefault writes a commented default wxt.toml into dir.
// An existing file is kept unless force is set, in which case it is backed up first.
func WriteDefault(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileName)

	if _, err := os.Stat(path); err == nil {
		if !force {
			return path, errors.WithHint(
				errors.NewInvalidRequestError("%s already exists", path),
				"pass --force to overwrite it (the old file is kept as .back1)")
		}
		if err := createBackup(path); err != nil {
			return path, err
		}
	}

	data, err := Marshal(Default())
	if err != nil {
		return path, err
	}

	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return path, errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

// createBackup rotates backups (.back1, .back2, .back3) before a config is replaced
func createBackup(configPath string) error {
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete old backup %s", back3)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, 0o644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}
