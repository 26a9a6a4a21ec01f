package typesdir

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/wxtgen/alias"
	"github.com/teranos/wxtgen/artifact"
	"github.com/teranos/wxtgen/config"
	"github.com/teranos/wxtgen/entrypoint"
	"github.com/teranos/wxtgen/locale"
	"github.com/teranos/wxtgen/typegen"
)

func entrypoints(t *testing.T, paths ...string) []entrypoint.Entrypoint {
	t.Helper()
	var out []entrypoint.Entrypoint
	for _, p := range paths {
		ep, ok, err := entrypoint.Infer(p)
		require.NoError(t, err)
		require.True(t, ok, p)
		out = append(out, ep)
	}
	return out
}

func content(t *testing.T, r *Result, path string) string {
	t.Helper()
	a, ok := artifact.Find(r.Artifacts, path)
	require.True(t, ok, "missing %s", path)
	return a.Content
}

func TestGenerate_NoEntrypoints(t *testing.T) {
	g := NewGenerator(zap.NewNop().Sugar())

	result, err := g.Generate(context.Background(), Input{Root: "/project"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		typegen.ImportsPath, typegen.GlobalsPath, typegen.WxtPath, typegen.TSConfigPath,
	}, artifact.Paths(result.Artifacts))
	assert.Equal(t, 9, strings.Count(content(t, result, typegen.GlobalsPath), "  const __"))
}

func TestGenerate_PageEntrypoints(t *testing.T) {
	g := NewGenerator(zap.NewNop().Sugar())

	result, err := g.Generate(context.Background(), Input{
		Root:        "/project",
		Entrypoints: entrypoints(t, "entrypoints/popup.html", "entrypoints/options.html", "entrypoints/sandbox.html", "entrypoints/background.ts"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/options.html", "/popup.html", "/sandbox.html"}, result.PublicPaths)
	paths := content(t, result, typegen.PathsPath)
	assert.Contains(t, paths, `    | "/options.html"
    | "/popup.html"
    | "/sandbox.html"
  export interface WxtRuntime extends Runtime.Static {`)

	_, ok := artifact.Find(result.Artifacts, typegen.I18nPath)
	assert.True(t, ok)
}

func TestGenerate_UnlistedPageTriggersPathsAndI18n(t *testing.T) {
	g := NewGenerator(zap.NewNop().Sugar())

	result, err := g.Generate(context.Background(), Input{
		Root:        "/project",
		Entrypoints: entrypoints(t, "entrypoints/unlisted.html"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		typegen.ImportsPath, typegen.PathsPath, typegen.I18nPath,
		typegen.GlobalsPath, typegen.WxtPath, typegen.TSConfigPath,
	}, artifact.Paths(result.Artifacts))
	assert.Equal(t, []string{"/unlisted.html"}, result.PublicPaths)
}

func TestGenerate_ScriptsOnlyRendersNever(t *testing.T) {
	g := NewGenerator(zap.NewNop().Sugar())

	result, err := g.Generate(context.Background(), Input{
		Root:        "/project",
		Entrypoints: entrypoints(t, "entrypoints/background.ts", "entrypoints/overlay.content.ts"),
	})
	require.NoError(t, err)

	assert.Empty(t, result.PublicPaths)
	assert.Contains(t, content(t, result, typegen.PathsPath), "export type PublicPath = never")
}

func TestGenerate_Locale(t *testing.T) {
	tree, err := locale.Parse(".json", []byte(`{
		"prompt_for_name": {"message": "What's your name?", "description": "Ask for the user's name"},
		"hello": {"message": "Hello, $USER$", "description": "Greet the user", "placeholders": {"user": {"content": "$1", "example": "Cira"}}},
		"bye": {"message": "Goodbye, $USER$. Come back to $OUR_SITE$ soon!", "description": "Say goodbye to the user",
			"placeholders": {"our_site": {"content": "Example.com"}, "user": {"content": "$1", "example": "Cira"}}}
	}`))
	require.NoError(t, err)

	result, err := NewGenerator(zap.NewNop().Sugar()).Generate(context.Background(), Input{
		Root:          "/project",
		Entrypoints:   entrypoints(t, "entrypoints/unlisted.html"),
		Locale:        tree,
		DefaultLocale: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"prompt_for_name", "hello", "bye",
		"@@extension_id", "@@ui_locale", "@@bidi_dir", "@@bidi_reversed_dir", "@@bidi_start_edge", "@@bidi_end_edge",
	}, result.Catalog.Schema().T)

	hello, ok := result.Catalog.Lookup("hello")
	require.True(t, ok)
	assert.Equal(t, "Greet the user", hello.Description)
	assert.Equal(t, "Hello, Cira", hello.Example)

	i18n := content(t, result, typegen.I18nPath)
	assert.Equal(t, 9, strings.Count(i18n, "    getMessage(\n"))
}

func TestGenerate_LocaleIgnoredWithoutDefaultLocale(t *testing.T) {
	tree, err := locale.Parse(".json", []byte(`{"hello": {"message": "Hello"}}`))
	require.NoError(t, err)

	result, err := NewGenerator(zap.NewNop().Sugar()).Generate(context.Background(), Input{
		Entrypoints: entrypoints(t, "entrypoints/popup.html"),
		Locale:      tree,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, result.Catalog.Len())
}

func TestGenerate_AliasesWithSrcDir(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	g := NewGenerator(zap.New(core).Sugar())

	result, err := g.Generate(context.Background(), Input{
		Root:   "/project",
		SrcDir: "src",
		Aliases: []alias.Declaration{
			{Token: "example", Target: "example"},
			{Token: "@", Target: "ignored-path"},
		},
		Entrypoints: entrypoints(t, "entrypoints/unlisted.html"),
	})
	require.NoError(t, err)

	tokens := make([]string, len(result.Aliases))
	for i, e := range result.Aliases {
		tokens[i] = e.Token
	}
	assert.Equal(t, []string{"example", "example/*", "@", "@/*", "~", "~/*", "@@", "@@/*", "~~", "~~/*"}, tokens)
	assert.Equal(t, []string{"../src"}, result.Aliases[2].Paths)

	tsconfig := content(t, result, typegen.TSConfigPath)
	assert.Contains(t, tsconfig, `"@": ["../src"],`)
	assert.NotContains(t, tsconfig, "ignored-path")

	require.Len(t, result.SkippedAliases, 1)
	entries := logs.FilterMessage("Alias ignored").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "@", entries[0].ContextMap()["alias"])
	assert.Equal(t, "reserved", entries[0].ContextMap()["reason"])
}

func TestGenerate_ImportsDisabled(t *testing.T) {
	result, err := NewGenerator(zap.NewNop().Sugar()).Generate(context.Background(), Input{ImportsDisabled: true})
	require.NoError(t, err)
	assert.Equal(t, "// Generated by wxt\nexport {}\ndeclare global {\n}\n", content(t, result, typegen.ImportsPath))
}

func TestGenerate_Deterministic(t *testing.T) {
	in := Input{
		Root:        "/project",
		SrcDir:      "src",
		Aliases:     []alias.Declaration{{Token: "lib", Target: "lib"}},
		Entrypoints: entrypoints(t, "entrypoints/popup.html", "entrypoints/options/index.html"),
		Imports:     []typegen.Import{{Name: "analytics", From: "@/utils/analytics"}},
	}
	g := NewGenerator(zap.NewNop().Sugar())

	first, err := g.Generate(context.Background(), in)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.Artifacts, second.Artifacts)
}

func TestGenerate_InvalidEntrypointFailsWholePass(t *testing.T) {
	g := NewGenerator(zap.NewNop().Sugar())

	result, err := g.Generate(context.Background(), Input{
		Entrypoints: []entrypoint.Entrypoint{
			{Name: "popup", Path: "entrypoints/popup.html", Kind: entrypoint.KindPopup},
			{Name: "../escape", Path: "entrypoints/escape.html", Kind: entrypoint.KindUnlistedPage},
		},
	})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(zap.NewNop().Sugar()).Generate(ctx, Input{})
	assert.Error(t, err)
}

func TestInputFromConfig(t *testing.T) {
	root := t.TempDir()
	mustWrite := func(rel, data string) {
		t.Helper()
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	}
	mustWrite("wxt.toml", "src_dir = \"src\"\n[manifest]\ndefault_locale = \"en\"\n")
	mustWrite("src/entrypoints/popup.html", "<html></html>")
	mustWrite("src/entrypoints/background.ts", "export default {}")
	mustWrite("src/locales/en.yml", "greeting:\n  message: Hi\n  description: Say hi\n")

	cfg, err := config.Load(root)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	in, err := InputFromConfig(context.Background(), cfg, zap.New(core).Sugar())
	require.NoError(t, err)

	require.Len(t, in.Entrypoints, 2)
	assert.Equal(t, "entrypoints/background.ts", in.Entrypoints[0].Path)
	assert.Equal(t, "entrypoints/popup.html", in.Entrypoints[1].Path)
	require.NotNil(t, in.Locale)
	assert.Equal(t, 1, logs.FilterMessage("Locale loaded").Len())

	result, err := NewGenerator(zap.NewNop().Sugar()).Generate(context.Background(), in)
	require.NoError(t, err)
	_, ok := result.Catalog.Lookup("greeting")
	assert.True(t, ok)
	assert.Contains(t, content(t, result, typegen.TSConfigPath), `"@": ["../src"],`)
}

func TestInputFromConfig_MissingLocaleFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "wxt.toml"), []byte("[manifest]\ndefault_locale = \"fr\"\n"), 0o644))

	cfg, err := config.Load(root)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.WarnLevel)
	in, err := InputFromConfig(context.Background(), cfg, zap.New(core).Sugar())
	require.NoError(t, err)

	assert.Nil(t, in.Locale)
	assert.Empty(t, in.Entrypoints)
	assert.Equal(t, 1, logs.Len())
}
