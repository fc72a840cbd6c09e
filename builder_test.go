package equinox_test

import (
	"io"
	"strings"
	"testing"

	"github.com/GuruLabs/equinox"
	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		const src = `<root><child id="c1">hello</child><empty/></root>`
		root, err := equinox.ReadDocument(t.Context(), strings.NewReader(src))
		require.NoError(t, err)

		require.Equal(t, "root", root.Name())
		require.Nil(t, root.Parent())

		child, ok := root.FirstChild().(*equinox.Element)
		require.True(t, ok)
		require.Equal(t, "child", child.Name())
		v, ok := child.Attribute("id")
		require.True(t, ok)
		require.Equal(t, "c1", v)
		require.Equal(t, "hello", child.Content())

		empty, ok := root.LastChild().(*equinox.Element)
		require.True(t, ok)
		require.Equal(t, "empty", empty.Name())
		require.Nil(t, empty.FirstChild())
	})

	t.Run("Prolog", func(t *testing.T) {
		const src = `<?xml version="1.0"?>
<!-- leading comment -->
<root/>`
		root, err := equinox.ReadDocument(t.Context(), strings.NewReader(src))
		require.NoError(t, err)
		require.Equal(t, "root", root.Name())
	})

	t.Run("Whitespace", func(t *testing.T) {
		const src = "<root>\n  <a/>\n  <b/>\n</root>"

		root, err := equinox.ReadDocument(t.Context(), strings.NewReader(src))
		require.NoError(t, err)
		var names []string
		for child := range root.Children() {
			names = append(names, child.Name())
		}
		require.Equal(t, []string{"a", "b"}, names, "whitespace-only text is discarded by default")

		root, err = equinox.ReadDocument(t.Context(), strings.NewReader(src), equinox.WithKeepBlanks(true))
		require.NoError(t, err)
		names = names[:0]
		for child := range root.Children() {
			names = append(names, child.Name())
		}
		require.Equal(t, []string{"#text", "a", "#text", "b", "#text"}, names)
	})

	t.Run("MixedContent", func(t *testing.T) {
		const src = `<p>one<b>two</b>three</p>`
		root, err := equinox.ReadDocument(t.Context(), strings.NewReader(src))
		require.NoError(t, err)
		require.Equal(t, "onetwothree", root.Content())

		var kinds []equinox.NodeType
		for child := range root.Children() {
			kinds = append(kinds, child.Type())
		}
		require.Equal(t, []equinox.NodeType{equinox.TextNode, equinox.ElementNode, equinox.TextNode}, kinds)
	})

	t.Run("DeclaredEncoding", func(t *testing.T) {
		src := "<?xml version=\"1.0\" encoding=\"iso-8859-1\"?><r>caf\xe9</r>"
		root, err := equinox.ReadDocument(t.Context(), strings.NewReader(src))
		require.NoError(t, err)
		require.Equal(t, "café", root.Content())
	})

	t.Run("ForcedEncoding", func(t *testing.T) {
		src := "<r>caf\xe9</r>"
		root, err := equinox.ReadDocument(t.Context(), strings.NewReader(src), equinox.WithEncoding("iso-8859-1"))
		require.NoError(t, err)
		require.Equal(t, "café", root.Content())
	})

	t.Run("UnknownEncoding", func(t *testing.T) {
		_, err := equinox.ReadDocument(t.Context(), strings.NewReader("<r/>"), equinox.WithEncoding("klingon"))
		require.ErrorIs(t, err, equinox.ErrInvalidValue)
	})

	t.Run("PrologOnly", func(t *testing.T) {
		const src = `<?xml version="1.0"?><!-- nothing here -->`
		_, err := equinox.ReadDocument(t.Context(), strings.NewReader(src))
		require.ErrorIs(t, err, equinox.ErrMalformedDocument)

		var berr *equinox.BuildError
		require.ErrorAs(t, err, &berr)
	})

	t.Run("EmptySource", func(t *testing.T) {
		_, err := equinox.ReadDocument(t.Context(), strings.NewReader(""))
		require.ErrorIs(t, err, equinox.ErrMalformedDocument)
	})

	t.Run("NilSource", func(t *testing.T) {
		_, err := equinox.ReadDocument(t.Context(), nil)
		require.ErrorIs(t, err, equinox.ErrInvalidValue)
	})

	t.Run("Truncated", func(t *testing.T) {
		const src = `<root><child>dangling`
		_, err := equinox.ReadDocument(t.Context(), strings.NewReader(src))
		require.ErrorIs(t, err, equinox.ErrMalformedDocument)
	})

	t.Run("MismatchedClose", func(t *testing.T) {
		const src = `<root><child></root>`
		_, err := equinox.ReadDocument(t.Context(), strings.NewReader(src))
		require.ErrorIs(t, err, equinox.ErrMalformedDocument)
	})
}

// scriptedReader replays a fixed event sequence, for exercising the
// builder against reader behaviors the default adapter cannot
// produce, such as self-closing reporting.
type scriptedReader struct {
	events    []scriptedEvent
	pos       int
	attrIndex int
}

type scriptedEvent struct {
	kind        equinox.EventKind
	name        string
	text        string
	selfClosing bool
	attrs       [][2]string
	err         error
}

func (r *scriptedReader) Next() (equinox.EventKind, error) {
	if r.pos >= len(r.events) {
		return equinox.EventNone, io.EOF
	}
	ev := r.events[r.pos]
	r.pos++
	if ev.err != nil {
		return equinox.EventNone, ev.err
	}
	return ev.kind, nil
}

func (r *scriptedReader) current() scriptedEvent {
	return r.events[r.pos-1]
}

func (r *scriptedReader) LocalName() string { return r.current().name }
func (r *scriptedReader) SelfClosing() bool { return r.current().selfClosing }
func (r *scriptedReader) Text() string      { return r.current().text }

func (r *scriptedReader) MoveToFirstAttribute() bool {
	r.attrIndex = 0
	return len(r.current().attrs) > 0
}

func (r *scriptedReader) MoveToNextAttribute() bool {
	if r.attrIndex+1 >= len(r.current().attrs) {
		return false
	}
	r.attrIndex++
	return true
}

func (r *scriptedReader) AttributeName() string  { return r.current().attrs[r.attrIndex][0] }
func (r *scriptedReader) AttributeValue() string { return r.current().attrs[r.attrIndex][1] }

func TestBuilderScripted(t *testing.T) {
	t.Run("SelfClosing", func(t *testing.T) {
		r := &scriptedReader{events: []scriptedEvent{
			{kind: equinox.EventStartElement, name: "root"},
			{kind: equinox.EventStartElement, name: "leaf", selfClosing: true, attrs: [][2]string{{"k", "v"}}},
			{kind: equinox.EventEndElement, name: "root"},
		}}

		root, err := equinox.NewBuilder().Build(t.Context(), r)
		require.NoError(t, err)
		leaf, ok := root.FirstChild().(*equinox.Element)
		require.True(t, ok)
		require.Equal(t, "leaf", leaf.Name())
		v, ok := leaf.Attribute("k")
		require.True(t, ok)
		require.Equal(t, "v", v)
	})

	t.Run("TruncatedInside", func(t *testing.T) {
		r := &scriptedReader{events: []scriptedEvent{
			{kind: equinox.EventStartElement, name: "root"},
			{kind: equinox.EventStartElement, name: "inner"},
		}}

		_, err := equinox.NewBuilder().Build(t.Context(), r)
		require.ErrorIs(t, err, equinox.ErrMalformedDocument)

		var berr *equinox.BuildError
		require.ErrorAs(t, err, &berr)
		require.Equal(t, []string{"root", "inner"}, berr.Path)
	})

	t.Run("SkippedEvents", func(t *testing.T) {
		r := &scriptedReader{events: []scriptedEvent{
			{kind: equinox.EventStartElement, name: "root"},
			{kind: equinox.EventComment, text: "ignored"},
			{kind: equinox.EventProcInst},
			{kind: equinox.EventText, text: "kept"},
			{kind: equinox.EventEndElement, name: "root"},
		}}

		root, err := equinox.NewBuilder().Build(t.Context(), r)
		require.NoError(t, err)
		require.Equal(t, "kept", root.Content())
	})
}
