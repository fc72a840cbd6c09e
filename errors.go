package equinox

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilNode is returned when nil is passed where a node is required.
	ErrNilNode = errors.New("nil node")

	// ErrInvalidValue is returned when a structural operation receives
	// an operand that is neither a Node nor a string.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidName is returned for an empty element or attribute name.
	ErrInvalidName = errors.New("invalid name")

	// ErrDetachedNode is returned when an edit that requires tree
	// context, such as sibling insertion, is attempted on a node that
	// has no parent.
	ErrDetachedNode = errors.New("node is not attached to a tree")

	// ErrNoAttribute is returned when removing an attribute that does
	// not exist.
	ErrNoAttribute = errors.New("no such attribute")

	// ErrMalformedDocument is returned when the source stream ends
	// before the document element is complete, or contains no document
	// element at all.
	ErrMalformedDocument = errors.New("malformed document")
)

// BuildError reports a failure while building a tree from a document
// reader. Path holds the names of the elements open at the point of
// failure, outermost first.
type BuildError struct {
	Path []string
	Err  error
}

func (e *BuildError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("build document: %s", e.Err)
	}
	return fmt.Sprintf("build document: in <%s>: %s", strings.Join(e.Path, "><"), e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
