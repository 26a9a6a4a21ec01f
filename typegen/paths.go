package typegen

import (
	"strconv"
	"strings"
)

// RenderPaths declares the PublicPath union and constrains getURL to it.
// An empty set renders as never.
func RenderPaths(paths []string) string {
	var sb strings.Builder
	sb.WriteString(Header + "\n")
	sb.WriteString(`import "wxt/browser";` + "\n\n")
	sb.WriteString(`declare module "wxt/browser" {` + "\n")

	if len(paths) == 0 {
		sb.WriteString("  export type PublicPath = never\n")
	} else {
		sb.WriteString("  export type PublicPath =\n")
		for _, p := range paths {
			sb.WriteString("    | " + strconv.Quote(p) + "\n")
		}
	}

	sb.WriteString("  export interface WxtRuntime extends Runtime.Static {\n")
	sb.WriteString("    getURL(path: PublicPath): string;\n")
	sb.WriteString("  }\n")
	sb.WriteString("}\n")
	return sb.String()
}
