package publicpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/wxtgen/entrypoint"
	"github.com/teranos/wxtgen/errors"
)

func infer(t *testing.T, paths ...string) []entrypoint.Entrypoint {
	t.Helper()
	var eps []entrypoint.Entrypoint
	for _, p := range paths {
		ep, ok, err := entrypoint.Infer(p)
		require.NoError(t, err)
		require.True(t, ok, p)
		eps = append(eps, ep)
	}
	return eps
}

func TestBuild_PagesSorted(t *testing.T) {
	eps := infer(t, "entrypoints/popup.html", "entrypoints/options.html", "entrypoints/sandbox.html")

	paths, err := Build(eps)
	require.NoError(t, err)
	assert.Equal(t, []string{"/options.html", "/popup.html", "/sandbox.html"}, paths)
}

func TestBuild_SkipsNonPages(t *testing.T) {
	eps := infer(t,
		"entrypoints/background.ts",
		"entrypoints/overlay.content.ts",
		"entrypoints/injected.ts",
		"entrypoints/theme.css",
		"entrypoints/devtools.html",
	)

	paths, err := Build(eps)
	require.NoError(t, err)
	assert.Equal(t, []string{"/devtools.html"}, paths)
}

func TestBuild_Deduplicates(t *testing.T) {
	eps := infer(t, "entrypoints/popup.html", "entrypoints/popup/index.html")

	paths, err := Build(eps)
	require.NoError(t, err)
	assert.Equal(t, []string{"/popup.html"}, paths)
}

func TestBuild_Empty(t *testing.T) {
	paths, err := Build(nil)
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = Build(infer(t, "entrypoints/background.ts"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestBuild_EveryPathIsRootedHTML(t *testing.T) {
	eps := infer(t, "entrypoints/unlisted.html", "entrypoints/editor.sandbox.html", "entrypoints/notes.sidepanel.html")

	paths, err := Build(eps)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, p := range paths {
		assert.Regexp(t, `^/[^/]+\.html$`, p)
	}
}

func TestFor_InfersMissingName(t *testing.T) {
	p, err := For(entrypoint.Entrypoint{Path: "entrypoints/options/index.html", Kind: entrypoint.KindOptions})
	require.NoError(t, err)
	assert.Equal(t, "/options.html", p)
}

func TestFor_TopLevelIndexPage(t *testing.T) {
	tests := map[string]string{
		"entrypoints/index.html":         "/index.html",
		"index.html":                     "/index.html",
		"entrypoints/sandbox/index.html": "/sandbox.html",
	}
	for path, want := range tests {
		got, err := For(entrypoint.Entrypoint{Path: path, Kind: entrypoint.KindUnlistedPage})
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}

func TestBuild_MalformedEntrypointFails(t *testing.T) {
	tests := []entrypoint.Entrypoint{
		{Name: "", Path: "entrypoints/.html", Kind: entrypoint.KindUnlistedPage},
		{Name: "..", Path: "entrypoints/x.html", Kind: entrypoint.KindPopup},
		{Name: "a/b", Path: "entrypoints/x.html", Kind: entrypoint.KindPopup},
		{Name: "   ", Path: "entrypoints/x.html", Kind: entrypoint.KindPopup},
		{Name: "", Path: "entrypoints/icon.png", Kind: entrypoint.KindPopup},
	}

	for _, ep := range tests {
		_, err := Build([]entrypoint.Entrypoint{{Name: "popup", Kind: entrypoint.KindPopup}, ep})
		assert.True(t, errors.Is(err, errors.ErrInvalidEntrypoint), "%+v: %v", ep, err)
	}
}
