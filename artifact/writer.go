package artifact

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/wxtgen/errors"
	"github.com/teranos/wxtgen/logger"
)

// WriteResult reports which artifacts touched disk
type WriteResult struct {
	Written   []string `json:"written"`
	Unchanged []string `json:"unchanged"`
}

// Writer puts artifacts under a directory. Files whose content already
// matches are left alone so their modification times stay put.
type Writer struct {
	logger *zap.SugaredLogger
}

// NewWriter creates a writer. A nil logger falls back to the global one.
func NewWriter(l *zap.SugaredLogger) *Writer {
	return &Writer{logger: logger.OrComponent(l, "artifact")}
}

// WriteAll stages every changed artifact next to its destination and then
// renames the staged files into place. Nothing is renamed until every
// changed artifact has been staged; staged files are removed on failure.
func (w *Writer) WriteAll(ctx context.Context, dir string, artifacts []Artifact) (*WriteResult, error) {
	start := time.Now()
	result := &WriteResult{}

	type staged struct {
		tmp, dest, rel string
	}
	var pending []staged
	cleanup := func() {
		for _, s := range pending {
			os.Remove(s.tmp)
		}
	}

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			cleanup()
			return nil, errors.Wrap(err, "write cancelled")
		}

		dest := filepath.Join(dir, filepath.FromSlash(a.Path))
		different, err := fileIsDifferent(dest, []byte(a.Content))
		if err != nil && !errors.IsNotFoundError(err) {
			cleanup()
			return nil, err
		}
		if err == nil && !different {
			result.Unchanged = append(result.Unchanged, a.Path)
			w.logger.Debugw("Artifact unchanged", logger.FieldArtifact, a.Path)
			continue
		}

		tmp, err := stage(dest, a.Content)
		if err != nil {
			cleanup()
			return nil, err
		}
		pending = append(pending, staged{tmp: tmp, dest: dest, rel: a.Path})
	}

	for i, s := range pending {
		if err := os.Rename(s.tmp, s.dest); err != nil {
			// earlier renames already landed; drop the remaining staged files
			for _, rest := range pending[i:] {
				os.Remove(rest.tmp)
			}
			return nil, errors.Wrapf(err, "failed to move %s into place", s.rel)
		}
		result.Written = append(result.Written, s.rel)
		w.logger.Debugw("Artifact written", logger.FieldArtifact, s.rel)
	}

	w.logger.Infow("Artifacts synced",
		logger.FieldOutDir, dir,
		logger.FieldChanged, len(result.Written),
		logger.FieldCount, len(artifacts),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return result, nil
}

func stage(dest, content string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory for %s", dest)
	}

	f, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return "", errors.Wrapf(err, "failed to stage %s", dest)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", errors.Wrapf(err, "failed to stage %s", dest)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrapf(err, "failed to stage %s", dest)
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrapf(err, "failed to stage %s", dest)
	}
	return f.Name(), nil
}
