package entrypoint

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/wxtgen/errors"
)

// Discover finds the entrypoints under srcDir/entrypointsDir.
//
// Files directly inside the directory are entrypoints; subdirectories are
// entrypoints when they contain an index file (popup/index.html). Hidden
// files and files without an entrypoint extension are skipped. A missing
// entrypoints directory yields an empty list.
//
// The result is sorted by Path so discovery order is stable across platforms.
func Discover(srcDir, entrypointsDir string) ([]Entrypoint, error) {
	dir := filepath.Join(srcDir, entrypointsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read entrypoints directory %s", dir)
	}

	prefix := filepath.ToSlash(filepath.Clean(entrypointsDir))
	var found []Entrypoint

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		if !entry.IsDir() {
			ep, ok, err := infer(path.Join(prefix, entry.Name()), prefix)
			if err != nil {
				return nil, err
			}
			if ok {
				found = append(found, ep)
			}
			continue
		}

		index, err := findIndex(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if index == "" {
			continue
		}
		ep, ok, err := infer(path.Join(prefix, entry.Name(), index), prefix)
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, ep)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Path < found[j].Path
	})
	return found, nil
}

// findIndex returns the index file name inside a directory entrypoint.
// HTML wins over scripts so popup/index.html + popup/index.ts is one page.
func findIndex(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read entrypoint directory %s", dir)
	}

	var script, style string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.TrimSuffix(name, path.Ext(name)) != "index" {
			continue
		}
		ext := path.Ext(name)
		switch {
		case ext == ".html":
			return name, nil
		case scriptExts[ext] && script == "":
			script = name
		case styleExts[ext] && style == "":
			style = name
		}
	}

	if script != "" {
		return script, nil
	}
	return style, nil
}
