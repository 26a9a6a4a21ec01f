package typegen

import (
	"strconv"
	"strings"

	"github.com/teranos/wxtgen/locale"
)

const getMessageDocs = "See https://developer.chrome.com/docs/extensions/reference/i18n/#method-getMessage"

// RenderI18n declares one getMessage overload per message plus the
// WxtMessageSchema augmentation.
//
// Each overload's doc comment quotes the message's Example, so placeholders
// that declare an example appear substituted ("Hello, Cira") rather than as
// the raw template ("Hello, $USER$") the wxt CLI prints.
func RenderI18n(catalog *locale.Catalog) string {
	var sb strings.Builder
	sb.WriteString(Header + "\n")
	sb.WriteString(`import "wxt/browser";` + "\n\n")
	sb.WriteString(`declare module "wxt/browser" {` + "\n")
	sb.WriteString("  /**\n")
	sb.WriteString("   * " + getMessageDocs + "\n")
	sb.WriteString("   */\n")
	sb.WriteString("  interface GetMessageOptions {\n")
	sb.WriteString("    /**\n")
	sb.WriteString("     * " + getMessageDocs + "\n")
	sb.WriteString("     */\n")
	sb.WriteString("    escapeLt?: boolean\n")
	sb.WriteString("  }\n\n")

	sb.WriteString("  export interface WxtI18n extends I18n.Static {\n")
	for _, m := range catalog.Messages() {
		writeOverload(&sb, m)
	}
	sb.WriteString("  }\n")
	sb.WriteString("}\n\n")

	schema := catalog.Schema()
	sb.WriteString(`declare module "wxt/i18n" {` + "\n")
	sb.WriteString("  export interface WxtMessageSchema {\n")
	sb.WriteString("    t: {\n")
	for _, key := range schema.T {
		sb.WriteString("      " + strconv.Quote(key) + ": any;\n")
	}
	sb.WriteString("    };\n")
	sb.WriteString("    tp: {\n")
	tp := make([]string, len(schema.TP))
	for i, key := range schema.TP {
		tp[i] = "      " + strconv.Quote(key) + ": any;"
	}
	sb.WriteString(strings.Join(tp, "\n") + "\n")
	sb.WriteString("    };\n")
	sb.WriteString("  }\n")
	sb.WriteString("}\n")
	return sb.String()
}

func writeOverload(sb *strings.Builder, m locale.Message) {
	sb.WriteString("    /**\n")
	sb.WriteString("     * " + commentSafe(m.Description) + "\n")
	sb.WriteString("     *\n")
	sb.WriteString(`     * "` + commentSafe(m.Example) + `"` + "\n")
	sb.WriteString("     */\n")
	sb.WriteString("    getMessage(\n")
	sb.WriteString("      messageName: " + strconv.Quote(m.Key) + ",\n")
	sb.WriteString("      substitutions?: string | string[],\n")
	sb.WriteString("      options?: GetMessageOptions,\n")
	sb.WriteString("    ): string;\n")
}

// commentSafe keeps text from closing the surrounding doc comment
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", `*\/`)
}
