package typegen

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/teranos/wxtgen/alias"
)

// compilerOptions are fixed; each value is already a JSON literal
var compilerOptions = []struct{ key, value string }{
	{"target", `"ESNext"`},
	{"module", `"ESNext"`},
	{"moduleResolution", `"Bundler"`},
	{"noEmit", "true"},
	{"esModuleInterop", "true"},
	{"forceConsistentCasingInFileNames", "true"},
	{"resolveJsonModule", "true"},
	{"strict", "true"},
	{"skipLibCheck", "true"},
}

// RenderTSConfig renders tsconfig.json. rootDir and outputDir are relative to
// the generated-output root. The file has no trailing newline.
func RenderTSConfig(aliases []alias.Entry, rootDir, outputDir string) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	sb.WriteString(`  "compilerOptions": {` + "\n")
	for _, opt := range compilerOptions {
		sb.WriteString("    " + jsonString(opt.key) + ": " + opt.value + ",\n")
	}

	sb.WriteString(`    "paths": {` + "\n")
	for i, entry := range aliases {
		sb.WriteString("      " + jsonString(entry.Token) + ": " + stringArray(entry.Paths))
		if i < len(aliases)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    }\n")
	sb.WriteString("  },\n")

	sb.WriteString(`  "include": [` + "\n")
	sb.WriteString("    " + jsonString(strings.TrimSuffix(rootDir, "/")+"/**/*") + ",\n")
	sb.WriteString("    " + jsonString("./"+WxtPath) + "\n")
	sb.WriteString("  ],\n")
	sb.WriteString(`  "exclude": ` + stringArray([]string{outputDir}) + "\n")
	sb.WriteString("}")
	return sb.String()
}

// jsonString quotes s as a JSON string without HTML escaping
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func stringArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = jsonString(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
