// Package alias resolves import path aliases for the generated tsconfig.json.
//
// Four alias roots are reserved: @ and ~ point at the source directory,
// @@ and ~~ point at the project root. Each root also has a wildcard form
// (@/*). User declarations can add aliases but never replace a reserved one.
package alias

import (
	"path/filepath"
	"strings"
)

const wildcard = "/*"

// Declaration is a user-declared alias, in config order.
// Target is relative to the project root unless absolute.
type Declaration struct {
	Token  string `mapstructure:"token" toml:"token" json:"token" yaml:"token"`
	Target string `mapstructure:"target" toml:"target" json:"target" yaml:"target"`
}

// Entry is one resolved tsconfig path mapping.
// Paths are slash-separated and relative to the generated-output directory.
type Entry struct {
	Token string
	Paths []string
}

// Dirs locates the directories aliases are resolved against.
// SrcDir and OutDir are relative to Root unless absolute.
type Dirs struct {
	Root   string
	SrcDir string
	OutDir string
}

var reserved = map[string]bool{
	"@": true, "@/*": true,
	"~": true, "~/*": true,
	"@@": true, "@@/*": true,
	"~~": true, "~~/*": true,
}

// IsReserved reports whether token (or its wildcard base) is a reserved alias
func IsReserved(token string) bool {
	return reserved[token] || reserved[strings.TrimSuffix(token, wildcard)]
}

// Resolve returns the ordered alias list:
// user aliases in declaration order, then @ ~ (source directory), then @@ ~~ (project root).
//
// Declarations naming a reserved token are dropped. A token declared twice keeps
// its first target. Targets are not validated.
func Resolve(dirs Dirs, decls []Declaration) []Entry {
	outDir := abs(dirs.Root, dirs.OutDir)
	srcTarget := relTo(outDir, abs(dirs.Root, dirs.SrcDir))
	rootTarget := relTo(outDir, abs(dirs.Root, "."))

	entries := make([]Entry, 0, len(decls)*2+8)
	seen := make(map[string]bool, len(decls)*2)

	for _, decl := range decls {
		token := strings.TrimSuffix(decl.Token, wildcard)
		if token == "" || IsReserved(token) || seen[token] {
			continue
		}
		seen[token] = true
		target := relTo(outDir, abs(dirs.Root, decl.Target))
		entries = append(entries, pair(token, target)...)
	}

	entries = append(entries, pair("@", srcTarget)...)
	entries = append(entries, pair("~", srcTarget)...)
	entries = append(entries, pair("@@", rootTarget)...)
	entries = append(entries, pair("~~", rootTarget)...)
	return entries
}

// Skipped returns the declarations Resolve drops, in declaration order
func Skipped(decls []Declaration) []Declaration {
	var skipped []Declaration
	seen := make(map[string]bool, len(decls))
	for _, decl := range decls {
		token := strings.TrimSuffix(decl.Token, wildcard)
		if token == "" || IsReserved(token) || seen[token] {
			skipped = append(skipped, decl)
			continue
		}
		seen[token] = true
	}
	return skipped
}

func pair(token, target string) []Entry {
	return []Entry{
		{Token: token, Paths: []string{target}},
		{Token: token + wildcard, Paths: []string{wildcardPath(target)}},
	}
}

func wildcardPath(target string) string {
	return strings.TrimSuffix(target, "/") + wildcard
}

func abs(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// relTo expresses target relative to base with forward slashes.
// Paths that cannot be made relative (different volumes) are kept absolute.
func relTo(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

// Rel expresses p (relative to Root unless absolute) relative to the
// generated-output directory, slash-separated
func Rel(dirs Dirs, p string) string {
	return relTo(abs(dirs.Root, dirs.OutDir), abs(dirs.Root, p))
}
