package equinox

import (
	"bufio"
	"fmt"
	"io"
)

// XMLWriter is the default DocumentWriter. It emits UTF-8 XML text to
// an io.Writer, escaping text and attribute values, and collapses
// childless elements to the self-closing form. It validates call order
// only as far as attribute placement requires.
type XMLWriter struct {
	out  *bufio.Writer
	tags []string
	open bool // start tag emitted but not yet closed with '>'
}

var _ DocumentWriter = (*XMLWriter)(nil)

func NewXMLWriter(out io.Writer) *XMLWriter {
	return &XMLWriter{out: bufio.NewWriter(out)}
}

func (w *XMLWriter) StartDocument() error {
	_, err := w.out.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	return err
}

func (w *XMLWriter) EndDocument() error {
	return w.out.WriteByte('\n')
}

// closeStartTag terminates a pending start tag once it is known that
// content follows.
func (w *XMLWriter) closeStartTag() error {
	if !w.open {
		return nil
	}
	w.open = false
	return w.out.WriteByte('>')
}

func (w *XMLWriter) StartElement(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := w.closeStartTag(); err != nil {
		return err
	}
	if err := w.out.WriteByte('<'); err != nil {
		return err
	}
	if _, err := w.out.WriteString(name); err != nil {
		return err
	}
	w.tags = append(w.tags, name)
	w.open = true
	return nil
}

func (w *XMLWriter) WriteAttribute(name, value string) error {
	if !w.open {
		return fmt.Errorf(`attribute %q outside a start tag: %w`, name, ErrInvalidValue)
	}
	if err := checkName(name); err != nil {
		return err
	}
	if err := w.out.WriteByte(' '); err != nil {
		return err
	}
	if _, err := w.out.WriteString(name); err != nil {
		return err
	}
	if _, err := w.out.WriteString(`="`); err != nil {
		return err
	}
	if err := escapeAttrValue(w.out, value); err != nil {
		return err
	}
	return w.out.WriteByte('"')
}

func (w *XMLWriter) WriteText(content string) error {
	if err := w.closeStartTag(); err != nil {
		return err
	}
	return escapeText(w.out, content)
}

func (w *XMLWriter) EndElement() error {
	if len(w.tags) == 0 {
		return fmt.Errorf(`end element without a start element: %w`, ErrInvalidValue)
	}
	name := w.tags[len(w.tags)-1]
	w.tags = w.tags[:len(w.tags)-1]

	if w.open {
		// nothing was written since the start tag
		w.open = false
		_, err := w.out.WriteString("/>")
		return err
	}

	if _, err := w.out.WriteString("</"); err != nil {
		return err
	}
	if _, err := w.out.WriteString(name); err != nil {
		return err
	}
	return w.out.WriteByte('>')
}

func (w *XMLWriter) Close() error {
	return w.out.Flush()
}
