package equinox

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/GuruLabs/equinox/internal/orderedmap"
)

// Element is a named node carrying an attribute mapping and an ordered
// child list. The child list is doubly linked through each child's
// sibling links; firstChild and lastChild are the ownership anchors.
type Element struct {
	treeNode
	name       string
	attrs      *orderedmap.Map[string, string]
	firstChild Node
	lastChild  Node
}

var _ Node = (*Element)(nil)

// NewElement creates a detached Element. The name must be non-empty.
// Initial attributes and children may be supplied through
// WithAttributes and WithChildren; a WithChildren option with an empty
// node list fails with ErrInvalidValue.
func NewElement(name string, options ...ElementOption) (*Element, error) {
	if name == "" {
		return nil, fmt.Errorf(`element name: %w`, ErrInvalidName)
	}

	e := &Element{
		name:  name,
		attrs: orderedmap.New[string, string](),
	}

	for _, option := range options {
		switch option.Ident() {
		case identAttributes{}:
			attrs := option.Value().(map[string]string)
			for _, k := range slices.Sorted(maps.Keys(attrs)) {
				if err := e.SetAttribute(k, attrs[k]); err != nil {
					return nil, err
				}
			}
		case identChildren{}:
			children := option.Value().([]Node)
			if len(children) == 0 {
				return nil, fmt.Errorf(`children: empty list: %w`, ErrInvalidValue)
			}
			for _, child := range children {
				if child == nil {
					return nil, fmt.Errorf(`children: %w`, ErrNilNode)
				}
				if err := e.Append(child); err != nil {
					return nil, err
				}
			}
		}
	}
	return e, nil
}

func (*Element) Type() NodeType {
	return ElementNode
}

func (e *Element) Name() string {
	return e.name
}

// SetName renames the element. An empty name fails with ErrInvalidName
// and leaves the element untouched.
func (e *Element) SetName(name string) error {
	if name == "" {
		return fmt.Errorf(`element name: %w`, ErrInvalidName)
	}
	e.name = name
	return nil
}

func (e *Element) FirstChild() Node {
	return e.firstChild
}

func (e *Element) LastChild() Node {
	return e.lastChild
}

func (e *Element) Content() string {
	var sb strings.Builder
	for child := e.firstChild; child != nil; child = child.NextSibling() {
		sb.WriteString(child.Content())
	}
	return sb.String()
}

// Prepend inserts v as the new first child. v is a Node or a string.
// Inserting e itself or one of its ancestors fails with
// ErrInvalidValue; it would make the tree cyclic.
func (e *Element) Prepend(v any) error {
	node, err := asNode(v)
	if err != nil {
		return err
	}
	if wouldCycle(node, e) {
		return fmt.Errorf(`prepend child: operand is the element or an ancestor: %w`, ErrInvalidValue)
	}
	node.Unlink()
	link(node, e, nil, e.firstChild)
	return nil
}

// Append inserts v as the new last child. v is a Node or a string.
// Inserting e itself or one of its ancestors fails with
// ErrInvalidValue; it would make the tree cyclic.
func (e *Element) Append(v any) error {
	node, err := asNode(v)
	if err != nil {
		return err
	}
	if wouldCycle(node, e) {
		return fmt.Errorf(`append child: operand is the element or an ancestor: %w`, ErrInvalidValue)
	}
	node.Unlink()
	link(node, e, e.lastChild, nil)
	return nil
}

func (e *Element) PrependSibling(v any) error {
	return prependSibling(e, v)
}

func (e *Element) AppendSibling(v any) error {
	return appendSibling(e, v)
}

func (e *Element) Substitute(v any) error {
	return substitute(e, v)
}

// Copy deep-copies the element: name, attributes and, recursively,
// every child in order. The copy is detached and shares no mutable
// state with the original. The meta annotation value itself is carried
// over as is.
func (e *Element) Copy() Node {
	clone := &Element{
		name:  e.name,
		attrs: e.attrs.Clone(),
	}
	clone.meta = e.meta
	for child := e.firstChild; child != nil; child = child.NextSibling() {
		link(child.Copy(), clone, clone.lastChild, nil)
	}
	return clone
}

// Attribute returns the value for name and whether it was present.
func (e *Element) Attribute(name string) (string, bool) {
	return e.attrs.Get(name)
}

// SetAttribute sets name to value, overwriting any previous value and
// keeping the original insertion position.
func (e *Element) SetAttribute(name, value string) error {
	if name == "" {
		return fmt.Errorf(`attribute name: %w`, ErrInvalidName)
	}
	e.attrs.Set(name, value)
	return nil
}

// RemoveAttribute deletes name, failing with ErrNoAttribute if the
// element does not carry it.
func (e *Element) RemoveAttribute(name string) error {
	if !e.attrs.Delete(name) {
		return fmt.Errorf(`attribute %q: %w`, name, ErrNoAttribute)
	}
	return nil
}

func (e *Element) HasAttribute(name string) bool {
	return e.attrs.Has(name)
}

// AttributeNames returns the attribute names in insertion order.
func (e *Element) AttributeNames() []string {
	return e.attrs.Keys()
}

// Attributes iterates over the attributes in insertion order.
func (e *Element) Attributes() iter.Seq2[string, string] {
	return e.attrs.Range()
}

// First returns the first direct child matching query, consulting the
// default selector. Nil if nothing matches.
func (e *Element) First(query string) Node {
	return DefaultSelector.First(e, query)
}

// Last is the reverse-order counterpart of First.
func (e *Element) Last(query string) Node {
	return DefaultSelector.Last(e, query)
}

// All returns every direct child matching query, in child order.
func (e *Element) All(query string) []Node {
	return DefaultSelector.All(e, query)
}
