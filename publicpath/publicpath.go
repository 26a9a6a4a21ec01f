// Package publicpath derives the extension URLs reachable through runtime.getURL.
package publicpath

import (
	"sort"
	"strings"
	"unicode"

	"github.com/teranos/wxtgen/entrypoint"
	"github.com/teranos/wxtgen/errors"
)

// Build returns the sorted, de-duplicated public paths of the page entrypoints.
//
// Each page yields "/<name>.html". Non-page kinds (background, content scripts,
// unlisted scripts and styles) contribute nothing. An entrypoint whose name
// cannot form a path fails the whole build with ErrInvalidEntrypoint.
func Build(entrypoints []entrypoint.Entrypoint) ([]string, error) {
	seen := make(map[string]bool, len(entrypoints))
	paths := make([]string, 0, len(entrypoints))

	for _, ep := range entrypoints {
		if !ep.IsPage() {
			continue
		}
		p, err := For(ep)
		if err != nil {
			return nil, err
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}

	sort.Strings(paths)
	return paths, nil
}

// For returns the public path of a single page entrypoint.
// When Name is empty it is inferred from Path.
func For(ep entrypoint.Entrypoint) (string, error) {
	name := ep.Name
	if name == "" {
		inferred, ok, err := entrypoint.Infer(ep.Path)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errors.NewInvalidEntrypointError("entrypoint %q is not an HTML page", ep.Path)
		}
		name = inferred.Name
	}

	name = strings.TrimSuffix(name, ".html")
	if err := validateName(name); err != nil {
		return "", errors.Wrapf(err, "entrypoint %q", ep.Path)
	}
	return "/" + name + ".html", nil
}

func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.NewInvalidEntrypointError("empty name")
	case name == "." || name == "..":
		return errors.NewInvalidEntrypointError("name %q is not a file name", name)
	case strings.ContainsAny(name, `/\"`):
		return errors.NewInvalidEntrypointError("name %q contains a path separator or quote", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.NewInvalidEntrypointError("name %q contains a control character", name)
		}
	}
	return nil
}
