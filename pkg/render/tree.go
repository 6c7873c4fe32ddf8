package render

import (
	"github.com/arthur-debert/textkit/pkg/block"
	"github.com/arthur-debert/textkit/pkg/errors"
)

// Tree guide glyphs. Each depth level is 4 columns: a guide on the
// entry's own line, a continuation bar or space below it.
const (
	treeGuide = "+-- "
	treePipe  = "|   "
	treeBlank = "    "
)

// Value is a tagged tree value: a scalar leaf, a sequence, or a
// nested node. Callers build Values from their own domain types
// before rendering; cyclic structures are not detected and produce
// undefined behavior, as the input is tree-shaped by contract.
type Value interface {
	isTreeValue()
}

type leaf struct {
	text string
}

func (leaf) isTreeValue() {}

type seq struct {
	items []Value
}

func (seq) isTreeValue() {}

// Leaf builds a scalar leaf value
func Leaf(v interface{}) Value {
	return leaf{text: FormatValue(v)}
}

// Seq builds a sequence value. Items that are not already Values are
// wrapped as leaves.
func Seq(items ...interface{}) Value {
	s := seq{items: make([]Value, len(items))}
	for i, item := range items {
		if v, ok := item.(Value); ok {
			s.items[i] = v
			continue
		}
		s.items[i] = Leaf(item)
	}
	return s
}

// Node is an ordered mapping from label to Value. Entry order is
// insertion order and determines display order.
type Node struct {
	entries []nodeEntry
}

type nodeEntry struct {
	key   string
	value Value
}

func (*Node) isTreeValue() {}

// NewNode creates an empty Node
func NewNode() *Node {
	return &Node{}
}

// Add appends an entry and returns the node for chaining
func (n *Node) Add(key string, value Value) *Node {
	n.entries = append(n.entries, nodeEntry{key: key, value: value})
	return n
}

// AddLeaf appends a scalar entry
func (n *Node) AddLeaf(key string, v interface{}) *Node {
	return n.Add(key, Leaf(v))
}

// Len returns the number of entries
func (n *Node) Len() int {
	return len(n.entries)
}

// Tree renders nested mappings with indentation guides. Every entry,
// including the top level, is prefixed with a guide; ancestors that
// still have open siblings contribute a continuation bar to the
// indentation of their descendants. The block takes its natural width.
func Tree(root *Node, opts ...Option) (*block.Block, error) {
	if root == nil {
		return nil, errors.New(errors.ErrInvalidInput, "tree root must not be nil")
	}

	// Width options are accepted for interface uniformity but a tree
	// renders at its natural width.
	o := buildOptions(opts)
	if _, err := o.resolveWidth(); err != nil {
		return nil, err
	}

	var lines []string
	renderNode(root, "", &lines)
	if len(lines) == 0 {
		lines = []string{""}
	}
	return block.New(lines), nil
}

func renderNode(n *Node, prefix string, lines *[]string) {
	for i, e := range n.entries {
		childPrefix := prefix + treePipe
		if i == len(n.entries)-1 {
			childPrefix = prefix + treeBlank
		}

		switch v := e.value.(type) {
		case leaf:
			*lines = append(*lines, prefix+treeGuide+e.key+": "+v.text)
		case seq:
			*lines = append(*lines, prefix+treeGuide+e.key)
			renderSeq(v, childPrefix, lines)
		case *Node:
			*lines = append(*lines, prefix+treeGuide+e.key)
			renderNode(v, childPrefix, lines)
		}
	}
}

// renderSeq renders sequence elements as guided lines one level down.
func renderSeq(s seq, prefix string, lines *[]string) {
	for i, item := range s.items {
		childPrefix := prefix + treePipe
		if i == len(s.items)-1 {
			childPrefix = prefix + treeBlank
		}

		switch v := item.(type) {
		case leaf:
			*lines = append(*lines, prefix+treeGuide+v.text)
		case seq:
			*lines = append(*lines, prefix+treeGuide)
			renderSeq(v, childPrefix, lines)
		case *Node:
			// A keyless node inside a sequence renders its entries
			// directly at this depth.
			renderNode(v, prefix, lines)
		}
	}
}
