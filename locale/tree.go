// Package locale turns a default-locale resource into the message list
// behind the generated i18n declarations.
//
// Locale resources are recursive key/value trees. Tree keeps keys in
// document order so the generated overloads follow the resource file.
package locale

// Node is one value in a locale tree: a scalar string or a nested Tree
type Node struct {
	String string
	Tree   *Tree
}

// IsTree reports whether the node is a nested mapping
func (n Node) IsTree() bool {
	return n.Tree != nil
}

// StringNode wraps a scalar value
func StringNode(s string) Node {
	return Node{String: s}
}

// TreeNode wraps a nested tree
func TreeNode(t *Tree) Node {
	return Node{Tree: t}
}

// Tree is an insertion-ordered mapping of keys to nodes
type Tree struct {
	keys   []string
	values map[string]Node
}

// NewTree returns an empty tree
func NewTree() *Tree {
	return &Tree{values: make(map[string]Node)}
}

// Set stores a node. Re-setting a key keeps its original position.
func (t *Tree) Set(key string, node Node) {
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = node
}

// Get returns the node stored under key
func (t *Tree) Get(key string) (Node, bool) {
	if t == nil {
		return Node{}, false
	}
	node, ok := t.values[key]
	return node, ok
}

// GetString returns the scalar stored under key, or "" when absent or nested
func (t *Tree) GetString(key string) string {
	node, ok := t.Get(key)
	if !ok || node.IsTree() {
		return ""
	}
	return node.String
}

// Subtree returns the tree under key, creating it when absent.
// A scalar stored under key is replaced.
func (t *Tree) Subtree(key string) *Tree {
	if node, ok := t.values[key]; ok && node.IsTree() {
		return node.Tree
	}
	sub := NewTree()
	t.Set(key, TreeNode(sub))
	return sub
}

// Keys returns the keys in insertion order
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of keys
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}
