package locale

import (
	"strings"
)

// NoDescription is shown for messages that declare no description
const NoDescription = "No message description."

// Placeholder is a named substitution declared by a message
type Placeholder struct {
	Name    string
	Content string
	Example string
}

// Message is one localizable message
type Message struct {
	Key          string
	Description  string
	Template     string // raw message text, empty for built-ins
	Placeholders []Placeholder
	// Example is the single-line rendering shown in documentation
	Example string
	Builtin bool
}

// builtinMessages are provided by the browser for every extension, in declaration order
var builtinMessages = []Message{
	{
		Key: "@@extension_id",
		Description: "The extension or app ID; you might use this string to construct URLs for resources inside the extension. Even unlocalized extensions can use this message.\n" +
			"Note: You can't use this message in a manifest file.",
		Example: "<browser.runtime.id>",
	},
	{
		Key:     "@@ui_locale",
		Example: "<browser.i18n.getUiLocale()>",
	},
	{
		Key:         "@@bidi_dir",
		Description: `The text direction for the current locale, either "ltr" for left-to-right languages such as English or "rtl" for right-to-left languages such as Japanese.`,
		Example:     "<ltr|rtl>",
	},
	{
		Key:         "@@bidi_reversed_dir",
		Description: `If the @@bidi_dir is "ltr", then this is "rtl"; otherwise, it's "ltr".`,
		Example:     "<rtl|ltr>",
	},
	{
		Key:         "@@bidi_start_edge",
		Description: `If the @@bidi_dir is "ltr", then this is "left"; otherwise, it's "right".`,
		Example:     "<left|right>",
	},
	{
		Key:         "@@bidi_end_edge",
		Description: `If the @@bidi_dir is "ltr", then this is "right"; otherwise, it's "left".`,
		Example:     "<right|left>",
	},
}

// Builtins returns the browser-provided pseudo-messages
func Builtins() []Message {
	out := make([]Message, len(builtinMessages))
	for i, m := range builtinMessages {
		m.Builtin = true
		if m.Description == "" {
			m.Description = NoDescription
		}
		out[i] = m
	}
	return out
}

// Build derives the ordered message list from the default-locale tree.
//
// Messages appear in resource order followed by the built-ins. A nil tree or an
// empty defaultLocale yields only the built-ins. Nested groups without a
// "message" field are flattened with "_" between keys, and a plain string value
// is shorthand for {"message": value}.
func Build(tree *Tree, defaultLocale string) *Catalog {
	var messages []Message
	if tree != nil && defaultLocale != "" {
		messages = collect(tree, "", messages)
	}
	return newCatalog(append(messages, Builtins()...))
}

func collect(tree *Tree, prefix string, messages []Message) []Message {
	for _, key := range tree.Keys() {
		node, _ := tree.Get(key)
		fullKey := prefix + key

		if !node.IsTree() {
			messages = append(messages, newMessage(fullKey, node.String, "", nil))
			continue
		}

		template, ok := node.Tree.Get("message")
		if !ok || template.IsTree() {
			messages = collect(node.Tree, fullKey+"_", messages)
			continue
		}

		placeholders := parsePlaceholders(node.Tree)
		messages = append(messages, newMessage(fullKey, template.String, node.Tree.GetString("description"), placeholders))
	}
	return messages
}

func parsePlaceholders(def *Tree) []Placeholder {
	node, ok := def.Get("placeholders")
	if !ok || !node.IsTree() {
		return nil
	}

	var out []Placeholder
	for _, name := range node.Tree.Keys() {
		p, _ := node.Tree.Get(name)
		ph := Placeholder{Name: name}
		if p.IsTree() {
			ph.Content = p.Tree.GetString("content")
			ph.Example = p.Tree.GetString("example")
		} else {
			ph.Content = p.String
		}
		out = append(out, ph)
	}
	return out
}

func newMessage(key, template, description string, placeholders []Placeholder) Message {
	if description == "" {
		description = NoDescription
	}
	return Message{
		Key:          key,
		Description:  description,
		Template:     template,
		Placeholders: placeholders,
		Example:      RenderExample(template, placeholders),
	}
}

// RenderExample substitutes placeholder examples into a message template.
//
// Named tokens ($USER$) match placeholders case-insensitively; positional
// tokens ($1) match the placeholder whose content is that token. Tokens with no
// matching placeholder or no example stay literal. "$$" renders as "$".
// Line breaks are escaped so the result fits on one line.
func RenderExample(template string, placeholders []Placeholder) string {
	var sb strings.Builder
	sb.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]
		if c != '$' {
			sb.WriteByte(c)
			i++
			continue
		}

		rest := template[i+1:]
		switch {
		case strings.HasPrefix(rest, "$"):
			sb.WriteByte('$')
			i += 2

		case len(rest) > 0 && isDigit(rest[0]):
			n := 1
			for n < len(rest) && isDigit(rest[n]) {
				n++
			}
			token := template[i : i+1+n]
			sb.WriteString(exampleFor(token, placeholders, byContent))
			i += 1 + n

		default:
			end := strings.IndexByte(rest, '$')
			if end <= 0 || !isPlaceholderName(rest[:end]) {
				sb.WriteByte('$')
				i++
				continue
			}
			sb.WriteString(exampleFor(rest[:end], placeholders, byName))
			i += end + 2
		}
	}

	return singleLine(sb.String())
}

type matchMode int

const (
	byName matchMode = iota
	byContent
)

// exampleFor returns the example for a token, or the literal token when none applies
func exampleFor(token string, placeholders []Placeholder, mode matchMode) string {
	for _, p := range placeholders {
		matched := false
		switch mode {
		case byName:
			matched = strings.EqualFold(p.Name, token)
		case byContent:
			matched = p.Content == token
		}
		if matched && p.Example != "" {
			return p.Example
		}
	}
	if mode == byName {
		return "$" + token + "$"
	}
	return token
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isPlaceholderName reports whether s is a valid placeholder name ([A-Za-z0-9_@])
func isPlaceholderName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '_' || c == '@') {
			return false
		}
	}
	return s != ""
}

var lineBreaks = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`)

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}
