// Package artifact holds rendered files and moves them onto disk.
package artifact

import (
	"sort"
)

// Artifact is one generated file, Path relative to the output directory
type Artifact struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Paths lists artifact paths in the order given
func Paths(artifacts []Artifact) []string {
	out := make([]string, len(artifacts))
	for i, a := range artifacts {
		out[i] = a.Path
	}
	return out
}

// Find returns the artifact stored at path
func Find(artifacts []Artifact, path string) (Artifact, bool) {
	for _, a := range artifacts {
		if a.Path == path {
			return a, true
		}
	}
	return Artifact{}, false
}

// CheckResult holds the outcome of comparing a render with disk
type CheckResult struct {
	UpToDate  bool     `json:"up_to_date"`
	Missing   []string `json:"missing,omitempty"`
	Different []string `json:"different,omitempty"`
}

// Stale lists every path that would be written, sorted
func (r *CheckResult) Stale() []string {
	out := append(append([]string{}, r.Missing...), r.Different...)
	sort.Strings(out)
	return out
}
