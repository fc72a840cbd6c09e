package equinox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// EventKind tags the events a DocumentReader produces. Only element
// boundaries and character data shape the tree; the remaining kinds
// exist so a reader can surface prolog and miscellaneous content for
// the builder to skip.
type EventKind int

const (
	EventNone EventKind = iota
	EventStartElement
	EventEndElement
	EventText
	EventWhitespace
	EventComment
	EventProcInst
	EventDirective
)

func (k EventKind) String() string {
	switch k {
	case EventStartElement:
		return "start-element"
	case EventEndElement:
		return "end-element"
	case EventText:
		return "text"
	case EventWhitespace:
		return "whitespace"
	case EventComment:
		return "comment"
	case EventProcInst:
		return "proc-inst"
	case EventDirective:
		return "directive"
	default:
		return "none"
	}
}

// DocumentReader is the pull cursor the builder consumes. Next
// advances to the next event, returning io.EOF when the stream is
// exhausted; any other error is fatal. The accessor methods describe
// the current event: LocalName and SelfClosing after a start-element
// (LocalName also after an end-element), Text after a text or
// whitespace event, and the attribute cursor immediately after a
// start-element. Moving the attribute cursor must not consume the
// underlying stream.
type DocumentReader interface {
	Next() (EventKind, error)
	LocalName() string
	SelfClosing() bool
	MoveToFirstAttribute() bool
	MoveToNextAttribute() bool
	AttributeName() string
	AttributeValue() string
	Text() string
}

// Builder assembles a tree from a DocumentReader event sequence.
type Builder struct {
	keepBlanks bool
}

func NewBuilder(options ...ReadOption) *Builder {
	var b Builder
	for _, option := range options {
		switch option.Ident() {
		case identKeepBlanks{}:
			b.keepBlanks = option.Value().(bool)
		}
	}
	return &b
}

// Build skips any leading non-element events (document prolog,
// comments, whitespace) and builds the tree rooted at the first
// element start. A stream that ends without one, or that ends inside
// an unclosed element, fails with an error wrapping
// ErrMalformedDocument.
func (b *Builder) Build(ctx context.Context, r DocumentReader) (*Element, error) {
	tlog := traceLoggerFromContext(ctx)
	for {
		kind, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &BuildError{Err: fmt.Errorf(`no document element: %w`, ErrMalformedDocument)}
			}
			return nil, &BuildError{Err: fmt.Errorf(`%w: %v`, ErrMalformedDocument, err)}
		}
		if kind == EventStartElement {
			return b.buildElement(ctx, r, nil)
		}
		tlog.Debug("skipping prolog event", slog.String("kind", kind.String()))
	}
}

// buildElement consumes the element the reader is positioned at, its
// attributes, and its content up to the matching end-element.
func (b *Builder) buildElement(ctx context.Context, r DocumentReader, path []string) (*Element, error) {
	tlog := traceLoggerFromContext(ctx)

	e, err := NewElement(r.LocalName())
	if err != nil {
		return nil, &BuildError{Path: path, Err: err}
	}
	path = append(path, e.Name())
	tlog.Debug("start element", slog.String("name", e.Name()))

	for ok := r.MoveToFirstAttribute(); ok; ok = r.MoveToNextAttribute() {
		if err := e.SetAttribute(r.AttributeName(), r.AttributeValue()); err != nil {
			return nil, &BuildError{Path: path, Err: err}
		}
	}

	if r.SelfClosing() {
		return e, nil
	}

	for {
		kind, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &BuildError{Path: path, Err: fmt.Errorf(`missing end of element: %w`, ErrMalformedDocument)}
			}
			return nil, &BuildError{Path: path, Err: fmt.Errorf(`%w: %v`, ErrMalformedDocument, err)}
		}

		switch kind {
		case EventStartElement:
			child, err := b.buildElement(ctx, r, path)
			if err != nil {
				return nil, err
			}
			if err := e.Append(child); err != nil {
				return nil, err
			}
		case EventEndElement:
			tlog.Debug("end element", slog.String("name", e.Name()))
			return e, nil
		case EventText:
			if err := e.Append(r.Text()); err != nil {
				return nil, err
			}
		case EventWhitespace:
			if b.keepBlanks {
				if err := e.Append(r.Text()); err != nil {
					return nil, err
				}
			}
		default:
			// comments, processing instructions and directives have no
			// tree representation
		}
	}
}

// ReadDocument builds a tree from src. The source must contain a
// single well-formed element tree; anything else fails with an error
// wrapping ErrMalformedDocument. Use WithKeepBlanks, WithEncoding and
// WithReader to adjust how the source is consumed.
func ReadDocument(ctx context.Context, src io.Reader, options ...ReadOption) (*Element, error) {
	var reader DocumentReader
	var encoding string
	for _, option := range options {
		switch option.Ident() {
		case identReader{}:
			reader = option.Value().(DocumentReader)
		case identEncoding{}:
			encoding = option.Value().(string)
		}
	}

	if reader == nil {
		if src == nil {
			return nil, fmt.Errorf(`read document: nil source: %w`, ErrInvalidValue)
		}
		r, err := NewXMLReader(src, encoding)
		if err != nil {
			return nil, fmt.Errorf(`read document: %w`, err)
		}
		reader = r
	}

	return NewBuilder(options...).Build(ctx, reader)
}
