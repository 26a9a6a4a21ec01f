package buildenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/wxtgen/errors"
)

func TestGlobals_FixedContract(t *testing.T) {
	var names, types []string
	for _, g := range Globals() {
		names = append(names, g.Name)
		types = append(types, g.Type)
	}

	assert.Equal(t, []string{
		"__MANIFEST_VERSION__", "__BROWSER__",
		"__IS_CHROME__", "__IS_FIREFOX__", "__IS_SAFARI__", "__IS_EDGE__", "__IS_OPERA__",
		"__COMMAND__", "__ENTRYPOINT__",
	}, names)
	assert.Equal(t, []string{
		"2 | 3", "string",
		"boolean", "boolean", "boolean", "boolean", "boolean",
		`"build" | "serve"`, "string",
	}, types)
}

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Context
		want Context
	}{
		{"empty", Context{}, Context{ManifestVersion: 3, Browser: "chrome", Command: "build"}},
		{"firefox", Context{Browser: "firefox"}, Context{ManifestVersion: 2, Browser: "firefox", Command: "build"}},
		{"safari", Context{Browser: "safari"}, Context{ManifestVersion: 2, Browser: "safari", Command: "build"}},
		{"explicit", Context{ManifestVersion: 3, Browser: "firefox", Command: "serve"}, Context{ManifestVersion: 3, Browser: "firefox", Command: "serve"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithDefaults())
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Context{ManifestVersion: 2, Browser: "edge", Command: "serve"}.Validate())

	for _, ctx := range []Context{
		{ManifestVersion: 4, Browser: "chrome", Command: "build"},
		{ManifestVersion: 3, Browser: "chrome", Command: "watch"},
		{ManifestVersion: 3, Browser: "", Command: "build"},
	} {
		err := ctx.Validate()
		assert.True(t, errors.Is(err, errors.ErrInvalidBuildContext), "%+v", ctx)
	}
}

func TestDefines(t *testing.T) {
	defines, err := Defines(Context{Browser: "firefox", Command: "serve", Entrypoint: "popup"})
	require.NoError(t, err)

	got := make(map[string]string, len(defines))
	for _, d := range defines {
		got[d.Name] = d.Value
	}

	assert.Len(t, defines, 9)
	assert.Equal(t, "__MANIFEST_VERSION__", defines[0].Name)
	assert.Equal(t, "2", got["__MANIFEST_VERSION__"])
	assert.Equal(t, `"firefox"`, got["__BROWSER__"])
	assert.Equal(t, "true", got["__IS_FIREFOX__"])
	assert.Equal(t, "false", got["__IS_CHROME__"])
	assert.Equal(t, `"serve"`, got["__COMMAND__"])
	assert.Equal(t, `"popup"`, got["__ENTRYPOINT__"])
}

func TestDefines_InvalidContext(t *testing.T) {
	_, err := Defines(Context{ManifestVersion: 1})
	assert.True(t, errors.Is(err, errors.ErrInvalidBuildContext))
}
