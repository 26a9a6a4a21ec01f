// Package buildenv describes the build-time constants injected into extension code.
//
// The constant names and types are fixed; globals.d.ts declares them for the
// type checker. Their values come from a per-build Context and are handed to
// the bundler as define replacements.
package buildenv

import (
	"encoding/json"
	"strconv"

	"github.com/teranos/wxtgen/errors"
)

// Supported browsers
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
)

// Build commands
const (
	CommandBuild = "build"
	CommandServe = "serve"
)

// Context is the per-build input the constants are evaluated against
type Context struct {
	ManifestVersion int    `mapstructure:"manifest_version" toml:"manifest_version" json:"manifest_version" yaml:"manifest_version"`
	Browser         string `mapstructure:"browser" toml:"browser" json:"browser" yaml:"browser"`
	Command         string `mapstructure:"command" toml:"command" json:"command" yaml:"command"`
	Entrypoint      string `mapstructure:"entrypoint" toml:"entrypoint" json:"entrypoint" yaml:"entrypoint"`
}

// WithDefaults fills the browser (chrome), command (build) and manifest version
// (2 for firefox and safari, 3 otherwise) when unset
func (c Context) WithDefaults() Context {
	if c.Browser == "" {
		c.Browser = BrowserChrome
	}
	if c.Command == "" {
		c.Command = CommandBuild
	}
	if c.ManifestVersion == 0 {
		switch c.Browser {
		case BrowserFirefox, BrowserSafari:
			c.ManifestVersion = 2
		default:
			c.ManifestVersion = 3
		}
	}
	return c
}

// Validate checks the values the declared types allow
func (c Context) Validate() error {
	if c.ManifestVersion != 2 && c.ManifestVersion != 3 {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidBuildContext, "manifest version %d", c.ManifestVersion),
			"manifest version must be 2 or 3")
	}
	if c.Command != CommandBuild && c.Command != CommandServe {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrInvalidBuildContext, "command %q", c.Command),
			"command must be %q or %q", CommandBuild, CommandServe)
	}
	if c.Browser == "" {
		return errors.Wrap(errors.ErrInvalidBuildContext, "browser is empty")
	}
	return nil
}

// Global is one build-time constant
type Global struct {
	Name string
	// Type is the TypeScript type of the constant
	Type  string
	value func(Context) interface{}
}

var globals = []Global{
	{Name: "__MANIFEST_VERSION__", Type: "2 | 3", value: func(c Context) interface{} { return c.ManifestVersion }},
	{Name: "__BROWSER__", Type: "string", value: func(c Context) interface{} { return c.Browser }},
	{Name: "__IS_CHROME__", Type: "boolean", value: isBrowser(BrowserChrome)},
	{Name: "__IS_FIREFOX__", Type: "boolean", value: isBrowser(BrowserFirefox)},
	{Name: "__IS_SAFARI__", Type: "boolean", value: isBrowser(BrowserSafari)},
	{Name: "__IS_EDGE__", Type: "boolean", value: isBrowser(BrowserEdge)},
	{Name: "__IS_OPERA__", Type: "boolean", value: isBrowser(BrowserOpera)},
	{Name: "__COMMAND__", Type: strconv.Quote(CommandBuild) + " | " + strconv.Quote(CommandServe), value: func(c Context) interface{} { return c.Command }},
	{Name: "__ENTRYPOINT__", Type: "string", value: func(c Context) interface{} { return c.Entrypoint }},
}

func isBrowser(name string) func(Context) interface{} {
	return func(c Context) interface{} { return c.Browser == name }
}

// Globals returns the constant contract in declaration order
func Globals() []Global {
	out := make([]Global, len(globals))
	copy(out, globals)
	return out
}

// Define is a constant name with its JSON-encoded value
type Define struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Defines evaluates every constant for ctx, in declaration order
func Defines(ctx Context) ([]Define, error) {
	ctx = ctx.WithDefaults()
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	defines := make([]Define, 0, len(globals))
	for _, g := range globals {
		encoded, err := json.Marshal(g.value(ctx))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s", g.Name)
		}
		defines = append(defines, Define{Name: g.Name, Value: string(encoded)})
	}
	return defines, nil
}
