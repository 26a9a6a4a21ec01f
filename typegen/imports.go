package typegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Import is one auto-imported global
type Import struct {
	Name string `mapstructure:"name" toml:"name" json:"name" yaml:"name"`
	From string `mapstructure:"from" toml:"from" json:"from" yaml:"from"`
}

// DefaultImports are the runtime helpers available without an import statement
var DefaultImports = []Import{
	{Name: "browser", From: "wxt/browser"},
	{Name: "createIframeUi", From: "wxt/client"},
	{Name: "createIntegratedUi", From: "wxt/client"},
	{Name: "createShadowRootUi", From: "wxt/client"},
	{Name: "ContentScriptContext", From: "wxt/client"},
	{Name: "defineAppConfig", From: "wxt/sandbox"},
	{Name: "defineBackground", From: "wxt/sandbox"},
	{Name: "defineContentScript", From: "wxt/sandbox"},
	{Name: "defineUnlistedScript", From: "wxt/sandbox"},
	{Name: "fakeBrowser", From: "wxt/testing"},
	{Name: "storage", From: "wxt/storage"},
	{Name: "useAppConfig", From: "wxt/client"},
}

// MergeImports combines defaults with extras. An extra with the same name as a
// default replaces it. The result is sorted by name.
func MergeImports(defaults, extras []Import) []Import {
	byName := make(map[string]Import, len(defaults)+len(extras))
	for _, imp := range defaults {
		byName[imp.Name] = imp
	}
	for _, imp := range extras {
		if imp.Name == "" || imp.From == "" {
			continue
		}
		byName[imp.Name] = imp
	}

	out := make([]Import, 0, len(byName))
	for _, imp := range byName {
		out = append(out, imp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RenderImports declares each import as a global typed after its module export
func RenderImports(imports []Import) string {
	var sb strings.Builder
	sb.WriteString(Header + "\n")
	sb.WriteString("export {}\n")
	sb.WriteString("declare global {\n")
	for _, imp := range imports {
		sb.WriteString(fmt.Sprintf("  const %s: typeof import(%s)[%s]\n",
			imp.Name, strconv.Quote(imp.From), strconv.Quote(imp.Name)))
	}
	sb.WriteString("}\n")
	return sb.String()
}
