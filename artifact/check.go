package artifact

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/teranos/wxtgen/errors"
)

// Check compares artifacts against the files under dir without writing.
// A read failure other than a missing file is returned as an error.
func Check(dir string, artifacts []Artifact) (*CheckResult, error) {
	result := &CheckResult{}

	for _, a := range artifacts {
		different, err := fileIsDifferent(filepath.Join(dir, filepath.FromSlash(a.Path)), []byte(a.Content))
		if err != nil {
			if errors.IsNotFoundError(err) {
				result.Missing = append(result.Missing, a.Path)
				continue
			}
			return nil, err
		}
		if different {
			result.Different = append(result.Different, a.Path)
		}
	}

	result.UpToDate = len(result.Missing) == 0 && len(result.Different) == 0
	return result, nil
}

// StaleError turns a failed check into an ErrStale error listing the files
func StaleError(result *CheckResult) error {
	if result == nil || result.UpToDate {
		return nil
	}
	stale := result.Stale()
	err := errors.Wrapf(errors.ErrStale, "%d generated file(s) differ", len(stale))
	for _, p := range stale {
		err = errors.WithDetail(err, p)
	}
	return errors.WithHint(err, "run `wxtgen generate` to refresh them")
}

// fileIsDifferent reports whether the file at path differs from want.
// A missing file is reported as ErrNotFound.
func fileIsDifferent(path string, want []byte) (bool, error) {
	got, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, errors.Wrap(errors.ErrNotFound, path)
		}
		return false, errors.Wrapf(err, "failed to read %s", path)
	}
	return !bytes.Equal(got, want), nil
}
