package equinox

import "iter"

// Handler produces the nodes matching a registered query, scoped to
// the direct children of e in the baseline contract. When reversed is
// true the sequence runs back to front. Handlers are free to define
// broader semantics; the engine does not constrain them.
type Handler func(e *Element, reversed bool) iter.Seq[Node]

// Selector dispatches a query string to either a registered Handler
// or, when none is registered, a literal scan of the direct children
// by name equality. Nothing is compiled or cached; every call
// re-scans.
type Selector struct {
	handlers map[string]Handler
}

// DefaultSelector is the process-wide engine the Element convenience
// methods delegate to. Callers that want isolated dispatch tables
// construct their own Selector and call it directly.
var DefaultSelector = NewSelector()

func NewSelector() *Selector {
	return &Selector{
		handlers: make(map[string]Handler),
	}
}

// Register binds query to h. Registration is last-writer-wins.
func (s *Selector) Register(query string, h Handler) {
	s.handlers[query] = h
}

// Register binds query to h on the default selector.
func Register(query string, h Handler) {
	DefaultSelector.Register(query, h)
}

// First returns the first match for query under e, or nil.
func (s *Selector) First(e *Element, query string) Node {
	if h, ok := s.handlers[query]; ok {
		for n := range h(e, false) {
			return n
		}
		return nil
	}
	for child := range e.Children() {
		if child.Name() == query {
			return child
		}
	}
	return nil
}

// Last returns the last match for query under e, or nil. Handlers are
// consumed through their reversed sequence.
func (s *Selector) Last(e *Element, query string) Node {
	if h, ok := s.handlers[query]; ok {
		for n := range h(e, true) {
			return n
		}
		return nil
	}
	for child := range e.ChildrenReversed() {
		if child.Name() == query {
			return child
		}
	}
	return nil
}

// All returns every match for query under e, in order. The result is
// never nil for a registered handler that yields nothing; it is simply
// empty.
func (s *Selector) All(e *Element, query string) []Node {
	matched := []Node{}
	if h, ok := s.handlers[query]; ok {
		for n := range h(e, false) {
			matched = append(matched, n)
		}
		return matched
	}
	for child := range e.Children() {
		if child.Name() == query {
			matched = append(matched, child)
		}
	}
	return matched
}
