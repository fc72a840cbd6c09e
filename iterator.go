package equinox

import "iter"

// The iterator family walks an element's live sibling chain; nothing
// is snapshotted. Each sequence is lazy and finite. Edits strictly
// behind the cursor (relative to the direction of travel) are safe
// during iteration; edits at or ahead of it leave the visited set
// undefined.

// Children yields every child in chain order.
func (e *Element) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for child := e.firstChild; child != nil; child = child.NextSibling() {
			if !yield(child) {
				return
			}
		}
	}
}

// ChildrenReversed yields every child in reverse chain order.
func (e *Element) ChildrenReversed() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for child := e.lastChild; child != nil; child = child.PrevSibling() {
			if !yield(child) {
				return
			}
		}
	}
}

// Elements yields the element children only, in chain order.
func (e *Element) Elements() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for child := e.firstChild; child != nil; child = child.NextSibling() {
			if el, ok := child.(*Element); ok {
				if !yield(el) {
					return
				}
			}
		}
	}
}

// ElementsReversed yields the element children only, in reverse order.
func (e *Element) ElementsReversed() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for child := e.lastChild; child != nil; child = child.PrevSibling() {
			if el, ok := child.(*Element); ok {
				if !yield(el) {
					return
				}
			}
		}
	}
}

// Texts yields the text children only, in chain order.
func (e *Element) Texts() iter.Seq[*Text] {
	return func(yield func(*Text) bool) {
		for child := e.firstChild; child != nil; child = child.NextSibling() {
			if t, ok := child.(*Text); ok {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// TextsReversed yields the text children only, in reverse order.
func (e *Element) TextsReversed() iter.Seq[*Text] {
	return func(yield func(*Text) bool) {
		for child := e.lastChild; child != nil; child = child.PrevSibling() {
			if t, ok := child.(*Text); ok {
				if !yield(t) {
					return
				}
			}
		}
	}
}
