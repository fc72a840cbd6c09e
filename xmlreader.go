package equinox

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/GuruLabs/equinox/encoding"
)

// XMLReader is the default DocumentReader, a thin cursor over
// encoding/xml's token stream. It performs no grammar work of its own:
// tokenization, entity expansion and well-formedness checks are the
// decoder's. Character data that is entirely whitespace surfaces as
// EventWhitespace so the builder can discard it.
//
// encoding/xml does not report whether an element was written in the
// self-closing form; SelfClosing is therefore always false and an
// empty element surfaces as a start-element immediately followed by
// its end-element, which builds the same tree.
type XMLReader struct {
	dec       *xml.Decoder
	name      string
	text      string
	attrs     []xml.Attr
	attrIndex int
}

var _ DocumentReader = (*XMLReader)(nil)

// NewXMLReader constructs a reader over src. A non-empty encodingName
// forces the source character encoding; otherwise encodings declared
// by the document itself are honored. Unknown encoding names fail.
func NewXMLReader(src io.Reader, encodingName string) (*XMLReader, error) {
	if encodingName != "" {
		enc := encoding.Load(encodingName)
		if enc == nil {
			return nil, fmt.Errorf(`unsupported encoding %q: %w`, encodingName, ErrInvalidValue)
		}
		src = enc.NewDecoder().Reader(src)
	}

	dec := xml.NewDecoder(src)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		enc := encoding.Load(charset)
		if enc == nil {
			return nil, fmt.Errorf(`unsupported encoding %q: %w`, charset, ErrInvalidValue)
		}
		return enc.NewDecoder().Reader(input), nil
	}
	return &XMLReader{dec: dec, attrIndex: -1}, nil
}

func (r *XMLReader) Next() (EventKind, error) {
	r.name = ""
	r.text = ""
	r.attrs = nil
	r.attrIndex = -1

	tok, err := r.dec.Token()
	if err != nil {
		// io.EOF passes through untouched; it is the end-of-stream
		// marker of the reader contract
		return EventNone, err
	}

	switch tok := tok.(type) {
	case xml.StartElement:
		r.name = tok.Name.Local
		r.attrs = tok.Attr
		return EventStartElement, nil
	case xml.EndElement:
		r.name = tok.Name.Local
		return EventEndElement, nil
	case xml.CharData:
		r.text = string(tok)
		if strings.TrimSpace(r.text) == "" {
			return EventWhitespace, nil
		}
		return EventText, nil
	case xml.Comment:
		r.text = string(tok)
		return EventComment, nil
	case xml.ProcInst:
		return EventProcInst, nil
	case xml.Directive:
		return EventDirective, nil
	default:
		return EventNone, nil
	}
}

func (r *XMLReader) LocalName() string {
	return r.name
}

func (r *XMLReader) SelfClosing() bool {
	return false
}

func (r *XMLReader) MoveToFirstAttribute() bool {
	if len(r.attrs) == 0 {
		return false
	}
	r.attrIndex = 0
	return true
}

func (r *XMLReader) MoveToNextAttribute() bool {
	if r.attrIndex < 0 || r.attrIndex+1 >= len(r.attrs) {
		return false
	}
	r.attrIndex++
	return true
}

func (r *XMLReader) AttributeName() string {
	if r.attrIndex < 0 || r.attrIndex >= len(r.attrs) {
		return ""
	}
	return r.attrs[r.attrIndex].Name.Local
}

func (r *XMLReader) AttributeValue() string {
	if r.attrIndex < 0 || r.attrIndex >= len(r.attrs) {
		return ""
	}
	return r.attrs[r.attrIndex].Value
}

func (r *XMLReader) Text() string {
	return r.text
}
