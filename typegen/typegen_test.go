package typegen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/wxtgen/alias"
	"github.com/teranos/wxtgen/artifact"
	"github.com/teranos/wxtgen/buildenv"
	"github.com/teranos/wxtgen/locale"
)

func TestRenderGlobals(t *testing.T) {
	want := `// Generated by wxt
export {}
declare global {
  const __MANIFEST_VERSION__: 2 | 3;
  const __BROWSER__: string;
  const __IS_CHROME__: boolean;
  const __IS_FIREFOX__: boolean;
  const __IS_SAFARI__: boolean;
  const __IS_EDGE__: boolean;
  const __IS_OPERA__: boolean;
  const __COMMAND__: "build" | "serve";
  const __ENTRYPOINT__: string;
}
`
	assert.Equal(t, want, RenderGlobals(buildenv.Globals()))
}

func TestRenderPaths(t *testing.T) {
	want := `// Generated by wxt
import "wxt/browser";

declare module "wxt/browser" {
  export type PublicPath =
    | "/options.html"
    | "/popup.html"
    | "/sandbox.html"
  export interface WxtRuntime extends Runtime.Static {
    getURL(path: PublicPath): string;
  }
}
`
	assert.Equal(t, want, RenderPaths([]string{"/options.html", "/popup.html", "/sandbox.html"}))
}

func TestRenderPaths_Empty(t *testing.T) {
	got := RenderPaths(nil)

	assert.Contains(t, got, "  export type PublicPath = never\n")
	assert.NotContains(t, got, "|")
	assert.Contains(t, got, "getURL(path: PublicPath): string;")
}

func TestRenderAggregator(t *testing.T) {
	want := `// Generated by wxt
/// <reference types="wxt/vite-builder-env" />
/// <reference types="./types/imports.d.ts" />
/// <reference types="./types/paths.d.ts" />
/// <reference types="./types/i18n.d.ts" />
/// <reference types="./types/globals.d.ts" />
`
	assert.Equal(t, want, RenderAggregator())
}

func TestRenderTSConfig_DefaultSrcDir(t *testing.T) {
	aliases := alias.Resolve(alias.Dirs{Root: "/project", SrcDir: ".", OutDir: ".wxt"}, nil)

	want := `{
  "compilerOptions": {
    "target": "ESNext",
    "module": "ESNext",
    "moduleResolution": "Bundler",
    "noEmit": true,
    "esModuleInterop": true,
    "forceConsistentCasingInFileNames": true,
    "resolveJsonModule": true,
    "strict": true,
    "skipLibCheck": true,
    "paths": {
      "@": [".."],
      "@/*": ["../*"],
      "~": [".."],
      "~/*": ["../*"],
      "@@": [".."],
      "@@/*": ["../*"],
      "~~": [".."],
      "~~/*": ["../*"]
    }
  },
  "include": [
    "../**/*",
    "./wxt.d.ts"
  ],
  "exclude": ["../.output"]
}`
	assert.Equal(t, want, RenderTSConfig(aliases, "..", "../.output"))
}

func TestRenderTSConfig_UserAliases(t *testing.T) {
	aliases := alias.Resolve(alias.Dirs{Root: "/project", SrcDir: "src", OutDir: ".wxt"}, []alias.Declaration{
		{Token: "example", Target: "example"},
		{Token: "@", Target: "ignored-path"},
	})

	got := RenderTSConfig(aliases, "..", "../.output")

	assert.Contains(t, got, `    "paths": {
      "example": ["../example"],
      "example/*": ["../example/*"],
      "@": ["../src"],
      "@/*": ["../src/*"],
      "~": ["../src"],
      "~/*": ["../src/*"],
      "@@": [".."],
      "@@/*": ["../*"],
      "~~": [".."],
      "~~/*": ["../*"]
    }`)
	assert.NotContains(t, got, "ignored-path")
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestRenderTSConfig_IsValidJSON(t *testing.T) {
	aliases := alias.Resolve(alias.Dirs{Root: "/project", SrcDir: "src", OutDir: ".wxt"}, []alias.Declaration{
		{Token: "a\x01b", Target: "lib/\vtab"},
		{Token: "quote\"d", Target: "back\\slash"},
		{Token: "html<&>", Target: "üñí"},
	})

	var parsed struct {
		CompilerOptions struct {
			Paths map[string][]string `json:"paths"`
		} `json:"compilerOptions"`
		Include []string `json:"include"`
		Exclude []string `json:"exclude"`
	}
	require.NoError(t, json.Unmarshal([]byte(RenderTSConfig(aliases, "..", "../.out\x7f")), &parsed))

	assert.Equal(t, []string{"../lib/\vtab"}, parsed.CompilerOptions.Paths["a\x01b"])
	assert.Contains(t, parsed.CompilerOptions.Paths, `quote"d/*`)
	assert.Equal(t, []string{"../üñí"}, parsed.CompilerOptions.Paths["html<&>"])
	assert.Equal(t, []string{"../.out\x7f"}, parsed.Exclude)
	assert.Equal(t, []string{"../**/*", "./wxt.d.ts"}, parsed.Include)
}

func TestRenderImports(t *testing.T) {
	got := RenderImports([]Import{
		{Name: "browser", From: "wxt/browser"},
		{Name: "storage", From: "wxt/storage"},
	})

	want := `// Generated by wxt
export {}
declare global {
  const browser: typeof import("wxt/browser")["browser"]
  const storage: typeof import("wxt/storage")["storage"]
}
`
	assert.Equal(t, want, got)
	assert.Equal(t, "// Generated by wxt\nexport {}\ndeclare global {\n}\n", RenderImports(nil))
}

func TestMergeImports(t *testing.T) {
	merged := MergeImports(DefaultImports, []Import{
		{Name: "storage", From: "@/utils/storage"},
		{Name: "analytics", From: "@/utils/analytics"},
		{Name: "", From: "ignored"},
	})

	names := make([]string, len(merged))
	for i, imp := range merged {
		names[i] = imp.Name
	}
	assert.Equal(t, len(DefaultImports)+1, len(merged))
	assert.Equal(t, "ContentScriptContext", names[0], "uppercase sorts first")
	assert.Contains(t, names, "analytics")

	for _, imp := range merged {
		if imp.Name == "storage" {
			assert.Equal(t, "@/utils/storage", imp.From)
		}
	}
}

func i18nFixture(t *testing.T) *locale.Catalog {
	t.Helper()
	tree, err := locale.Parse(".json", []byte(`{
		"prompt_for_name": {"message": "What's your name?", "description": "Ask for the user's name"},
		"hello": {
			"message": "Hello, $USER$",
			"description": "Greet the user",
			"placeholders": {"user": {"content": "$1", "example": "Cira"}}
		},
		"bye": {
			"message": "Goodbye, $USER$. Come back to $OUR_SITE$ soon!",
			"description": "Say goodbye to the user",
			"placeholders": {
				"our_site": {"content": "Example.com"},
				"user": {"content": "$1", "example": "Cira"}
			}
		}
	}`))
	require.NoError(t, err)
	return locale.Build(tree, "en")
}

func TestRenderI18n(t *testing.T) {
	got := RenderI18n(i18nFixture(t))

	head := `// Generated by wxt
import "wxt/browser";

declare module "wxt/browser" {
  /**
   * See https://developer.chrome.com/docs/extensions/reference/i18n/#method-getMessage
   */
  interface GetMessageOptions {
    /**
     * See https://developer.chrome.com/docs/extensions/reference/i18n/#method-getMessage
     */
    escapeLt?: boolean
  }

  export interface WxtI18n extends I18n.Static {
    /**
     * Ask for the user's name
     *
     * "What's your name?"
     */
    getMessage(
      messageName: "prompt_for_name",
      substitutions?: string | string[],
      options?: GetMessageOptions,
    ): string;
    /**
     * Greet the user
     *
     * "Hello, Cira"
     */
    getMessage(
      messageName: "hello",
      substitutions?: string | string[],
      options?: GetMessageOptions,
    ): string;
    /**
     * Say goodbye to the user
     *
     * "Goodbye, Cira. Come back to $OUR_SITE$ soon!"
     */
`
	assert.True(t, strings.HasPrefix(got, head), got)

	assert.Contains(t, got, `    /**
     * The extension or app ID; you might use this string to construct URLs for resources inside the extension. Even unlocalized extensions can use this message.
Note: You can't use this message in a manifest file.
     *
     * "<browser.runtime.id>"
     */
    getMessage(
      messageName: "@@extension_id",`)
	assert.Contains(t, got, `     * No message description.
     *
     * "<browser.i18n.getUiLocale()>"`)

	tail := `  }
}

declare module "wxt/i18n" {
  export interface WxtMessageSchema {
    t: {
      "prompt_for_name": any;
      "hello": any;
      "bye": any;
      "@@extension_id": any;
      "@@ui_locale": any;
      "@@bidi_dir": any;
      "@@bidi_reversed_dir": any;
      "@@bidi_start_edge": any;
      "@@bidi_end_edge": any;
    };
    tp: {

    };
  }
}
`
	assert.True(t, strings.HasSuffix(got, tail), got)
	assert.Equal(t, 9, strings.Count(got, "    getMessage(\n"))
}

func TestRenderI18n_BuiltinsOnly(t *testing.T) {
	got := RenderI18n(locale.Build(nil, ""))

	for _, key := range []string{"@@extension_id", "@@ui_locale", "@@bidi_dir", "@@bidi_reversed_dir", "@@bidi_start_edge", "@@bidi_end_edge"} {
		assert.Contains(t, got, `messageName: "`+key+`",`)
	}
	assert.Equal(t, 6, strings.Count(got, "getMessage("))
}

func TestRenderI18n_CommentTerminatorEscaped(t *testing.T) {
	tree, err := locale.Parse(".json", []byte(`{"tricky": {"message": "a */ b", "description": "ends */ early"}}`))
	require.NoError(t, err)

	got := RenderI18n(locale.Build(tree, "en"))
	assert.Contains(t, got, `     * ends *\/ early`)
	assert.Contains(t, got, `     * "a *\/ b"`)
}

func TestRender_ArtifactSelection(t *testing.T) {
	aliases := alias.Resolve(alias.Dirs{Root: "/p", SrcDir: ".", OutDir: ".wxt"}, nil)

	tests := []struct {
		name  string
		facts Facts
		want  []string
	}{
		{
			name:  "no entrypoints",
			facts: Facts{Aliases: aliases, OutputDir: "../.output"},
			want:  []string{ImportsPath, GlobalsPath, WxtPath, TSConfigPath},
		},
		{
			name:  "with entrypoints",
			facts: Facts{HasEntrypoints: true, PublicPaths: []string{"/popup.html"}, Aliases: aliases, OutputDir: "../.output"},
			want:  []string{ImportsPath, PathsPath, I18nPath, GlobalsPath, WxtPath, TSConfigPath},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifacts, err := Render(tt.facts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, artifact.Paths(artifacts))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	facts := Facts{
		HasEntrypoints: true,
		PublicPaths:    []string{"/options.html", "/popup.html"},
		Catalog:        i18nFixture(t),
		Aliases:        alias.Resolve(alias.Dirs{Root: "/p", SrcDir: "src", OutDir: ".wxt"}, []alias.Declaration{{Token: "lib", Target: "lib"}}),
		Imports:        MergeImports(DefaultImports, nil),
		OutputDir:      "../.output",
	}

	first, err := Render(facts)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Render(facts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRender_RejectsUnnormalizedPath(t *testing.T) {
	_, err := Render(Facts{HasEntrypoints: true, PublicPaths: []string{"popup"}})
	assert.Error(t, err)
}
