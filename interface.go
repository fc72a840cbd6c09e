// Package equinox implements a mutable in-memory tree model for
// semi-structured documents: named elements with attributes, text
// leaves, structural editing primitives, traversal iterators, a
// pluggable child-lookup selector, and streaming adapters that build
// a tree from -- and render it back to -- a token-oriented document
// reader/writer.
//
// Trees are not safe for concurrent mutation. A tree has at most one
// logical owner at a time; callers that need concurrent access must
// serialize externally. Iterators traverse live sibling links without
// snapshotting, so editing the range an iterator has yet to visit
// leaves the set of visited nodes undefined.
package equinox

// NodeType distinguishes the two concrete node kinds. The set is
// closed: consumers switch exhaustively on it.
type NodeType int

const (
	ElementNode NodeType = iota + 1
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	default:
		return "unknown"
	}
}

// Node is the interface shared by Element and Text. The parent,
// previous-sibling and next-sibling links are lookup references only;
// an Element owns its children exclusively.
//
// The structural methods that take an `any` operand accept either a
// Node or a string. Strings are coerced into new Text nodes; anything
// else fails with ErrInvalidValue.
type Node interface {
	// getTreeNode returns the embedded linkage part of the node.
	// Every structural mutation goes through it.
	getTreeNode() *treeNode

	Type() NodeType
	Name() string

	// Content returns the text payload of the node. For elements this
	// is the concatenation of all descendant text in document order.
	Content() string

	Parent() *Element
	NextSibling() Node
	PrevSibling() Node

	// Meta returns the annotation attached to this node, or, when the
	// node has none, the nearest annotation found walking up the
	// parent chain. Returns nil if no ancestor carries one.
	Meta() any
	SetMeta(any)

	// Unlink detaches the node from its parent and siblings. Calling
	// it on an already detached node is a no-op.
	Unlink()

	PrependSibling(any) error
	AppendSibling(any) error

	// Substitute inserts the replacement in this node's position and
	// unlinks this node.
	Substitute(any) error

	// Copy returns a deep copy sharing no mutable state with the
	// original.
	Copy() Node
}
