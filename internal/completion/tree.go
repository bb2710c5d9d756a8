// Package completion synthesizes tab completion from command patterns.
// Patterns are compiled into a prefix tree of tokens; the tree is then walked to
// produce scoped completers that are aggregated into a single Engine.
package completion

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map"

	"patterncli/internal/pattern"
)

// Node is one token position in a Tree. The root carries no token.
type Node struct {
	token    pattern.Token
	root     bool
	children *orderedmap.OrderedMap // label -> *Node, first-insertion order
}

func newNode(tok pattern.Token, root bool) *Node {
	return &Node{
		token:    tok,
		root:     root,
		children: orderedmap.New(),
	}
}

// Token returns the node's token. ok is false for the root.
func (n *Node) Token() (tok pattern.Token, ok bool) {
	return n.token, !n.root
}

// Label returns the textual form of the node's token, or "" for the root.
func (n *Node) Label() string {
	if n.root {
		return ""
	}
	return n.token.String()
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.children.Len() == 0
}

// Child returns the child labelled label.
func (n *Node) Child(label string) (*Node, bool) {
	v, ok := n.children.Get(label)
	if !ok {
		return nil, false
	}
	return v.(*Node), true
}

// Children returns the node's children in first-insertion order.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, n.children.Len())
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		children = append(children, pair.Value.(*Node))
	}
	return children
}

func (n *Node) findOrCreateChild(tok pattern.Token) *Node {
	if child, ok := n.Child(tok.String()); ok {
		return child
	}
	child := newNode(tok, false)
	n.children.Set(tok.String(), child)
	return child
}

// Tree is a prefix tree over tokenized command patterns. Patterns that share a
// leading token sequence share the nodes for that sequence.
type Tree struct {
	root *Node
}

// NewTree returns a tree holding only the root.
func NewTree() *Tree {
	return &Tree{root: newNode(pattern.Token{}, true)}
}

// BuildTree compiles all patterns into one tree.
func BuildTree(patterns []string) *Tree {
	t := NewTree()
	for _, p := range patterns {
		t.Add(p)
	}
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Add inserts a pattern. Optional groups are expanded eagerly: the group's
// interior followed by the remaining tokens forms one path, and the remaining
// tokens alone form another.
func (t *Tree) Add(p string) {
	insert(t.root, pattern.Parse(p))
}

func insert(node *Node, tokens []pattern.Token) {
	cursor := node
	for i, tok := range tokens {
		if tok.IsOptional() {
			rest := tokens[i+1:]
			withGroup := make([]pattern.Token, 0, len(tok.Inner)+len(rest))
			withGroup = append(withGroup, tok.Inner...)
			withGroup = append(withGroup, rest...)
			insert(cursor, withGroup)
			continue
		}
		cursor = cursor.findOrCreateChild(tok)
	}
}

// Lookup walks the tree from the root following labels.
func (t *Tree) Lookup(labels ...string) (*Node, bool) {
	node := t.root
	for _, label := range labels {
		next, ok := node.Child(label)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

// Size returns the number of nodes below the root.
func (t *Tree) Size() int {
	return len(t.Paths())
}

// Paths returns every root-to-node path, labels joined by a single space, in
// depth-first order.
func (t *Tree) Paths() []string {
	var paths []string
	var walk func(n *Node, prefix []string)
	walk = func(n *Node, prefix []string) {
		for _, child := range n.Children() {
			path := append(append([]string(nil), prefix...), child.Label())
			paths = append(paths, strings.Join(path, " "))
			walk(child, path)
		}
	}
	walk(t.root, nil)
	return paths
}
