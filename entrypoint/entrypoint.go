// Package entrypoint models the build inputs of an extension project.
//
// An Entrypoint is one discovered file (or directory with an index file)
// under the entrypoints directory. Its Kind is inferred from filename
// conventions only, so the same path always yields the same Kind.
package entrypoint

import (
	"path"
	"strings"

	"github.com/teranos/wxtgen/errors"
)

// Kind is the extension surface an entrypoint builds
type Kind string

const (
	KindPopup              Kind = "popup"
	KindOptions            Kind = "options"
	KindSandbox            Kind = "sandbox"
	KindDevtools           Kind = "devtools"
	KindSidepanel          Kind = "sidepanel"
	KindNewtab             Kind = "newtab"
	KindHistory            Kind = "history"
	KindBookmarks          Kind = "bookmarks"
	KindUnlistedPage       Kind = "unlisted-page"
	KindBackground         Kind = "background"
	KindContentScript      Kind = "content-script"
	KindContentScriptStyle Kind = "content-script-style"
	KindUnlistedScript     Kind = "unlisted-script"
	KindUnlistedStyle      Kind = "unlisted-style"
)

// pageKinds are the kinds a user can navigate to
var pageKinds = map[Kind]bool{
	KindPopup:        true,
	KindOptions:      true,
	KindSandbox:      true,
	KindDevtools:     true,
	KindSidepanel:    true,
	KindNewtab:       true,
	KindHistory:      true,
	KindBookmarks:    true,
	KindUnlistedPage: true,
}

// IsPage reports whether the kind is an HTML page reachable by URL
func (k Kind) IsPage() bool {
	return pageKinds[k]
}

// Entrypoint is one build input.
// Path is slash-separated and relative to the source directory.
type Entrypoint struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Kind Kind   `json:"kind"`
}

// IsPage reports whether the entrypoint is a navigable HTML page
func (e Entrypoint) IsPage() bool {
	return e.Kind.IsPage()
}

var (
	scriptExts = map[string]bool{".js": true, ".ts": true, ".jsx": true, ".tsx": true, ".mjs": true, ".mts": true}
	styleExts  = map[string]bool{".css": true, ".scss": true, ".sass": true, ".less": true, ".styl": true, ".stylus": true}
)

// pageOverrides are page names whose kind is the name itself
var pageOverrides = map[string]Kind{
	"popup":     KindPopup,
	"options":   KindOptions,
	"sandbox":   KindSandbox,
	"devtools":  KindDevtools,
	"sidepanel": KindSidepanel,
	"newtab":    KindNewtab,
	"history":   KindHistory,
	"bookmarks": KindBookmarks,
}

// Infer builds an Entrypoint from a path relative to the source directory.
// Directory entrypoints are given as their index file (entrypoints/popup/index.html)
// and are named after the directory. An index file directly inside the
// entrypoints directory (entrypoints/index.html) keeps the name "index".
// Returns ok=false for files that are not entrypoints (images, json, ...).
func Infer(relPath string) (Entrypoint, bool, error) {
	return infer(relPath, "")
}

// infer names index files after their directory unless that directory is root.
// With an empty root, the first path segment is taken as the entrypoints directory.
func infer(relPath, root string) (Entrypoint, bool, error) {
	p := path.Clean(strings.ReplaceAll(relPath, "\\", "/"))
	if p == "." || p == "/" || p == ".." || strings.HasPrefix(p, "../") || path.IsAbs(p) {
		return Entrypoint{}, false, errors.NewInvalidEntrypointError("entrypoint path %q must be relative to the source directory", relPath)
	}

	base := path.Base(p)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "index" && isDirIndex(path.Dir(p), root) {
		stem = path.Base(path.Dir(p))
	}

	name, role := splitRole(stem)
	if name == "" || name == "." {
		return Entrypoint{}, false, errors.NewInvalidEntrypointError("entrypoint %q has no name", relPath)
	}

	var kind Kind
	switch {
	case ext == ".html":
		kind = pageKind(name, role)
	case scriptExts[ext]:
		kind = scriptKind(name, role)
	case styleExts[ext]:
		kind = styleKind(name, role)
	default:
		return Entrypoint{}, false, nil
	}

	return Entrypoint{Name: name, Path: p, Kind: kind}, true, nil
}

func isDirIndex(dir, root string) bool {
	if dir == "." || dir == root {
		return false
	}
	if root == "" {
		return path.Dir(dir) != "."
	}
	return true
}

// splitRole splits "overlay.content" into ("overlay", "content").
// Names without a recognised role suffix are returned whole.
func splitRole(stem string) (string, string) {
	dot := strings.LastIndex(stem, ".")
	if dot <= 0 {
		return stem, ""
	}
	switch role := stem[dot+1:]; role {
	case "content", "sandbox", "sidepanel":
		return stem[:dot], role
	}
	return stem, ""
}

func pageKind(name, role string) Kind {
	switch role {
	case "sandbox":
		return KindSandbox
	case "sidepanel":
		return KindSidepanel
	}
	if kind, ok := pageOverrides[name]; ok {
		return kind
	}
	return KindUnlistedPage
}

func scriptKind(name, role string) Kind {
	switch {
	case role == "content" || name == "content":
		return KindContentScript
	case name == "background":
		return KindBackground
	}
	return KindUnlistedScript
}

func styleKind(name, role string) Kind {
	if role == "content" || name == "content" {
		return KindContentScriptStyle
	}
	return KindUnlistedStyle
}

// CountPages returns how many entrypoints are navigable pages
func CountPages(entrypoints []Entrypoint) int {
	n := 0
	for _, e := range entrypoints {
		if e.IsPage() {
			n++
		}
	}
	return n
}
