package equinox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// DocumentWriter is the push sink the serializer emits to. Calls
// arrive in document order: StartDocument once, then for each element
// StartElement, one WriteAttribute per attribute, the children, and
// EndElement; WriteText for text nodes; finally EndDocument and Close.
type DocumentWriter interface {
	StartDocument() error
	EndDocument() error
	StartElement(name string) error
	EndElement() error
	WriteAttribute(name, value string) error
	WriteText(content string) error
	Close() error
}

// Serializer walks a tree depth first in document order and pushes it
// to a DocumentWriter. It holds no state beyond the recursion stack.
type Serializer struct{}

// Serialize writes the tree rooted at root to w, including the
// document envelope. The writer is closed on success.
func (s *Serializer) Serialize(ctx context.Context, w DocumentWriter, root *Element) error {
	if root == nil {
		return fmt.Errorf(`serialize: %w`, ErrNilNode)
	}
	if err := w.StartDocument(); err != nil {
		return err
	}
	if err := s.serializeNode(ctx, w, root); err != nil {
		return err
	}
	if err := w.EndDocument(); err != nil {
		return err
	}
	return w.Close()
}

func (s *Serializer) serializeNode(ctx context.Context, w DocumentWriter, n Node) error {
	switch n := n.(type) {
	case *Element:
		traceLoggerFromContext(ctx).Debug("serialize element", slog.String("name", n.Name()))
		if err := w.StartElement(n.Name()); err != nil {
			return err
		}
		for name, value := range n.Attributes() {
			if err := w.WriteAttribute(name, value); err != nil {
				return err
			}
		}
		for child := range n.Children() {
			if err := s.serializeNode(ctx, w, child); err != nil {
				return err
			}
		}
		return w.EndElement()
	case *Text:
		return w.WriteText(n.Content())
	default:
		return fmt.Errorf(`serialize: %T: %w`, n, ErrInvalidValue)
	}
}

// WriteDocument renders the tree rooted at root to dst as a document,
// using the default writer. A nil root fails with ErrNilNode.
func WriteDocument(ctx context.Context, dst io.Writer, root *Element) error {
	if root == nil {
		return fmt.Errorf(`write document: %w`, ErrNilNode)
	}
	var s Serializer
	return s.Serialize(ctx, NewXMLWriter(dst), root)
}
