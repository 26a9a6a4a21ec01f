package typegen

import (
	"fmt"
	"strings"

	"github.com/teranos/wxtgen/buildenv"
)

// RenderGlobals declares the build-time constants. Values are injected by the
// bundler, so only the types appear here.
func RenderGlobals(globals []buildenv.Global) string {
	var sb strings.Builder
	sb.WriteString(Header + "\n")
	sb.WriteString("export {}\n")
	sb.WriteString("declare global {\n")
	for _, g := range globals {
		sb.WriteString(fmt.Sprintf("  const %s: %s;\n", g.Name, g.Type))
	}
	sb.WriteString("}\n")
	return sb.String()
}
