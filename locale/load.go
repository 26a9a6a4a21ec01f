package locale

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/buger/jsonparser"
	"gopkg.in/yaml.v3"

	"github.com/teranos/wxtgen/errors"
)

// Extensions lists the locale file formats LoadFile understands, in lookup order
var Extensions = []string{".json", ".yml", ".yaml", ".toml"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadFile reads a locale resource into an ordered tree.
// The format is chosen by extension: .json, .yml/.yaml or .toml.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "locale file %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read locale file %s", path)
	}

	tree, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse locale file %s", path)
	}
	return tree, nil
}

// Parse decodes locale data in the format named by ext
func Parse(ext string, data []byte) (*Tree, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	switch strings.ToLower(ext) {
	case ".json":
		return parseJSON(data)
	case ".yml", ".yaml":
		return parseYAML(data)
	case ".toml":
		return parseTOML(data)
	default:
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrInvalidLocale, "unsupported locale format %q", ext),
			"use one of %s", strings.Join(Extensions, ", "))
	}
}

func parseJSON(data []byte) (*Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewTree(), nil
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidLocale, err.Error())
	}
	if dataType != jsonparser.Object {
		return nil, errors.Wrapf(errors.ErrInvalidLocale, "top-level JSON value is %s, want object", dataType)
	}
	return jsonObject(value)
}

func jsonObject(data []byte) (*Tree, error) {
	tree := NewTree()
	// ObjectEach hands keys over already unescaped; values are raw
	err := jsonparser.ObjectEach(data, func(rawKey, value []byte, dataType jsonparser.ValueType, _ int) error {
		key := string(rawKey)
		node, err := jsonNode(key, value, dataType)
		if err != nil {
			return err
		}
		tree.Set(key, node)
		return nil
	})
	if err != nil {
		if errors.Is(err, errors.ErrInvalidLocale) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrInvalidLocale, err.Error())
	}
	return tree, nil
}

func jsonNode(key string, value []byte, dataType jsonparser.ValueType) (Node, error) {
	switch dataType {
	case jsonparser.Object:
		sub, err := jsonObject(value)
		if err != nil {
			return Node{}, err
		}
		return TreeNode(sub), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return Node{}, errors.Wrapf(errors.ErrInvalidLocale, "key %q: %v", key, err)
		}
		return StringNode(s), nil
	case jsonparser.Number, jsonparser.Boolean:
		return StringNode(string(value)), nil
	case jsonparser.Null:
		return StringNode(""), nil
	default:
		return Node{}, errors.Wrapf(errors.ErrInvalidLocale, "key %q: unsupported %s value", key, dataType)
	}
}

func parseYAML(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidLocale, err.Error())
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewTree(), nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, errors.Wrapf(errors.ErrInvalidLocale, "line %d: top-level YAML value must be a mapping", root.Line)
	}
	return yamlMapping(root)
}

func yamlMapping(node *yaml.Node) (*Tree, error) {
	tree := NewTree()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], resolveAlias(node.Content[i+1])
		key := keyNode.Value

		switch valueNode.Kind {
		case yaml.MappingNode:
			sub, err := yamlMapping(valueNode)
			if err != nil {
				return nil, err
			}
			tree.Set(key, TreeNode(sub))
		case yaml.ScalarNode:
			if valueNode.Tag == "!!null" {
				tree.Set(key, StringNode(""))
				continue
			}
			tree.Set(key, StringNode(valueNode.Value))
		default:
			return nil, errors.Wrapf(errors.ErrInvalidLocale, "line %d: key %q must be a string or mapping", valueNode.Line, key)
		}
	}
	return tree, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func parseTOML(data []byte) (*Tree, error) {
	raw := make(map[string]interface{})
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidLocale, err.Error())
	}

	tree := NewTree()
	for _, key := range md.Keys() {
		if err := placeTOMLKey(tree, raw, key); err != nil {
			return nil, err
		}
	}
	fillMissing(tree, raw)
	return tree, nil
}

// placeTOMLKey inserts one key from the TOML document in document order
func placeTOMLKey(tree *Tree, raw map[string]interface{}, key toml.Key) error {
	parent := tree
	current := raw
	for i, part := range key {
		value, ok := current[part]
		if !ok {
			return nil
		}
		switch v := value.(type) {
		case map[string]interface{}:
			parent = parent.Subtree(part)
			current = v
		case []map[string]interface{}, []interface{}:
			return errors.Wrapf(errors.ErrInvalidLocale, "key %q: arrays are not supported", key.String())
		default:
			if i == len(key)-1 {
				if _, exists := parent.Get(part); !exists {
					parent.Set(part, StringNode(fmt.Sprint(v)))
				}
			}
			return nil
		}
	}
	return nil
}

// fillMissing adds keys the decoder did not report, sorted for stable output
func fillMissing(tree *Tree, raw map[string]interface{}) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := raw[k].(type) {
		case map[string]interface{}:
			fillMissing(tree.Subtree(k), v)
		case []map[string]interface{}, []interface{}:
			continue
		default:
			if _, exists := tree.Get(k); !exists {
				tree.Set(k, StringNode(fmt.Sprint(v)))
			}
		}
	}
}
