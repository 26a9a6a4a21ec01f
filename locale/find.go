package locale

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/teranos/wxtgen/errors"
)

// NormalizeTag validates a locale identifier and returns it in the
// browser's underscore form ("en-us" -> "en_US").
func NormalizeTag(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrInvalidLocale, "default locale %q: %v", locale, err),
			`use a language tag such as "en" or "pt_BR"`)
	}
	return strings.ReplaceAll(tag.String(), "-", "_"), nil
}

// candidateNames lists the file stems tried for a locale, most specific first
func candidateNames(locale string) []string {
	names := []string{locale}
	add := func(name string) {
		for _, existing := range names {
			if existing == name {
				return
			}
		}
		names = append(names, name)
	}

	if normalized, err := NormalizeTag(locale); err == nil {
		add(normalized)
		add(strings.ToLower(normalized))
	}
	add(strings.ToLower(locale))
	return names
}

// FindDefaultFile locates the resource for locale.
//
// Search order, for each candidate name (as given, then normalized):
//   - localesDir/<name>.json|.yml|.yaml|.toml
//   - publicDir/_locales/<name>/messages.json
//
// Returns ErrNotFound when no file exists.
func FindDefaultFile(localesDir, publicDir, locale string) (string, error) {
	if locale == "" {
		return "", errors.Wrap(errors.ErrNotFound, "no default locale configured")
	}

	for _, name := range candidateNames(locale) {
		for _, ext := range Extensions {
			candidate := filepath.Join(localesDir, name+ext)
			if isFile(candidate) {
				return candidate, nil
			}
		}
		if publicDir != "" {
			candidate := filepath.Join(publicDir, "_locales", name, "messages.json")
			if isFile(candidate) {
				return candidate, nil
			}
		}
	}

	return "", errors.WithHintf(
		errors.Wrapf(errors.ErrNotFound, "no locale file for %q", locale),
		"create %s", filepath.Join(localesDir, locale+".json"))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
