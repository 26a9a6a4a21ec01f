package typegen

import "strings"

// references lists the declaration files wxt.d.ts pulls in, in order
var references = []string{
	"wxt/vite-builder-env",
	"./" + ImportsPath,
	"./" + PathsPath,
	"./" + I18nPath,
	"./" + GlobalsPath,
}

// RenderAggregator renders wxt.d.ts. Its content never depends on the project.
func RenderAggregator() string {
	var sb strings.Builder
	sb.WriteString(Header + "\n")
	for _, ref := range references {
		sb.WriteString(`/// <reference types="` + ref + `" />` + "\n")
	}
	return sb.String()
}
