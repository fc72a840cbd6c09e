package equinox

import (
	"fmt"

	"github.com/lestrrat-go/pdebug"
)

// treeNode is the linkage part embedded in every concrete node. The
// parent, prev and next fields are lookup references, never ownership
// edges: a node is owned by the Element whose child chain reaches it.
//
// Because treeNode only sees itself, methods that must store the
// *containing* node into a neighbor's links cannot live here -- a
// method promoted from treeNode would capture the embedded struct, not
// the Element or Text around it. Anything that mutates both the
// current node and an operand node is a free function taking Node
// values instead.
type treeNode struct {
	parent *Element
	prev   Node
	next   Node
	meta   any
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) Parent() *Element {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

// SetMeta attaches an annotation to this node. Setting nil clears it,
// making Meta fall through to the ancestors again.
func (n *treeNode) SetMeta(v any) {
	n.meta = v
}

func (n *treeNode) Meta() any {
	if n.meta != nil {
		return n.meta
	}
	for p := n.parent; p != nil; p = p.treeNode.parent {
		if p.meta != nil {
			return p.meta
		}
	}
	return nil
}

// Unlink removes the node from its current parent and sibling context,
// restoring the neighbor links around it. It is a no-op on a node that
// is already detached.
func (n *treeNode) Unlink() {
	if n.prev != nil {
		n.prev.getTreeNode().next = n.next
	} else if n.parent != nil {
		n.parent.firstChild = n.next
	}
	if n.next != nil {
		n.next.getTreeNode().prev = n.prev
	} else if n.parent != nil {
		n.parent.lastChild = n.prev
	}
	n.parent = nil
	n.prev = nil
	n.next = nil
}

// link positions self under parent between prev and next. A nil prev
// means self becomes the first child, a nil next the last child; both
// nil links self as the lone child. self is detached from any previous
// position first. This is the single primitive every structural
// mutation reduces to.
func link(self Node, parent *Element, prev, next Node) {
	if pdebug.Enabled {
		pdebug.Printf("link %s %q under element %q", self.Type(), self.Name(), parent.Name())
	}

	self.Unlink()
	st := self.getTreeNode()
	st.parent = parent
	st.prev = prev
	st.next = next
	if prev != nil {
		prev.getTreeNode().next = self
	} else {
		parent.firstChild = self
	}
	if next != nil {
		next.getTreeNode().prev = self
	} else {
		parent.lastChild = self
	}
}

// asNode coerces a structural operand into a Node. Strings become new
// Text nodes.
func asNode(v any) (Node, error) {
	switch v := v.(type) {
	case nil:
		return nil, ErrNilNode
	case Node:
		return v, nil
	case string:
		return NewText(v), nil
	default:
		return nil, fmt.Errorf(`expected Node or string, got %T: %w`, v, ErrInvalidValue)
	}
}

// wouldCycle reports whether linking node under parent would make an
// element reachable from its own child chain: true when node is parent
// itself or one of parent's ancestors.
func wouldCycle(node Node, parent *Element) bool {
	el, ok := node.(*Element)
	if !ok {
		return false
	}
	for cur := parent; cur != nil; cur = cur.treeNode.parent {
		if cur == el {
			return true
		}
	}
	return false
}

func prependSibling(self Node, v any) error {
	node, err := asNode(v)
	if err != nil {
		return err
	}
	st := self.getTreeNode()
	if st.parent == nil {
		return fmt.Errorf(`prepend sibling: %w`, ErrDetachedNode)
	}
	if node == self {
		// moving a node in front of itself leaves the tree unchanged
		return nil
	}
	if wouldCycle(node, st.parent) {
		return fmt.Errorf(`prepend sibling: operand is the parent or an ancestor: %w`, ErrInvalidValue)
	}

	// Detach the operand before reading self's links: if node was
	// self's neighbor, unlinking it changes them.
	node.Unlink()
	link(node, st.parent, st.prev, self)
	return nil
}

func appendSibling(self Node, v any) error {
	node, err := asNode(v)
	if err != nil {
		return err
	}
	st := self.getTreeNode()
	if st.parent == nil {
		return fmt.Errorf(`append sibling: %w`, ErrDetachedNode)
	}
	if node == self {
		return nil
	}
	if wouldCycle(node, st.parent) {
		return fmt.Errorf(`append sibling: operand is the parent or an ancestor: %w`, ErrInvalidValue)
	}

	node.Unlink()
	link(node, st.parent, self, st.next)
	return nil
}

func substitute(self Node, v any) error {
	node, err := asNode(v)
	if err != nil {
		return err
	}
	st := self.getTreeNode()
	if st.parent == nil {
		return fmt.Errorf(`substitute: %w`, ErrDetachedNode)
	}
	if node == self {
		return nil
	}
	if wouldCycle(node, st.parent) {
		return fmt.Errorf(`substitute: replacement is the parent or an ancestor: %w`, ErrInvalidValue)
	}

	node.Unlink()
	link(node, st.parent, st.prev, self)
	self.Unlink()
	return nil
}

// WalkFunc is invoked by Walk for every node visited.
type WalkFunc func(Node) error

// Walk visits n and, depth first in document order, every node below
// it. Traversal stops at the first error, which is returned as is.
func Walk(n Node, fn WalkFunc) error {
	if n == nil {
		return ErrNilNode
	}
	if err := fn(n); err != nil {
		return err
	}
	if e, ok := n.(*Element); ok {
		for child := e.firstChild; child != nil; child = child.NextSibling() {
			if err := Walk(child, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
