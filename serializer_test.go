package equinox_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/GuruLabs/equinox"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		root := mustElement(t, "root")
		child := mustElement(t, "child", equinox.WithAttributes(map[string]string{"id": "c1"}))
		require.NoError(t, child.Append("hello"))
		require.NoError(t, root.Append(child))
		require.NoError(t, root.Append(mustElement(t, "empty")))

		var buf bytes.Buffer
		require.NoError(t, equinox.WriteDocument(t.Context(), &buf, root))
		require.Equal(t,
			"<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<root><child id=\"c1\">hello</child><empty/></root>\n",
			buf.String())
	})

	t.Run("Escaping", func(t *testing.T) {
		root := mustElement(t, "root", equinox.WithAttributes(map[string]string{"q": `a"b<c`}))
		require.NoError(t, root.Append("1 < 2 & 3 > 2"))

		var buf bytes.Buffer
		require.NoError(t, equinox.WriteDocument(t.Context(), &buf, root))
		require.Equal(t,
			"<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<root q=\"a&#34;b&lt;c\">1 &lt; 2 &amp; 3 &gt; 2</root>\n",
			buf.String())
	})

	t.Run("NilRoot", func(t *testing.T) {
		var buf bytes.Buffer
		require.ErrorIs(t, equinox.WriteDocument(t.Context(), &buf, nil), equinox.ErrNilNode)
	})
}

// treesEquivalent compares element names, attribute sets, text content
// and child order, ignoring attribute ordering.
func treesEquivalent(t *testing.T, want, got equinox.Node) {
	t.Helper()
	require.Equal(t, want.Type(), got.Type())

	switch want := want.(type) {
	case *equinox.Element:
		gotEl := got.(*equinox.Element)
		require.Equal(t, want.Name(), gotEl.Name())

		wantAttrs := map[string]string{}
		for k, v := range want.Attributes() {
			wantAttrs[k] = v
		}
		gotAttrs := map[string]string{}
		for k, v := range gotEl.Attributes() {
			gotAttrs[k] = v
		}
		require.Equal(t, wantAttrs, gotAttrs)

		wc, gc := want.FirstChild(), gotEl.FirstChild()
		for wc != nil && gc != nil {
			treesEquivalent(t, wc, gc)
			wc, gc = wc.NextSibling(), gc.NextSibling()
		}
		require.Nil(t, wc, "same number of children")
		require.Nil(t, gc, "same number of children")
	case *equinox.Text:
		require.Equal(t, want.Content(), got.Content())
	}
}

func TestRoundTrip(t *testing.T) {
	sources := map[string]string{
		"simple":     `<root><child id="c1">hello</child><empty/></root>`,
		"mixed":      `<p>one<b>two</b>three</p>`,
		"nested":     `<a><b><c><d deep="yes">x</d></c></b></a>`,
		"attributes": `<r one="1" two="2" three="3"/>`,
		"escapes":    `<r attr="a&quot;b">x &lt; y &amp; z</r>`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			original, err := equinox.ReadDocument(t.Context(), strings.NewReader(src))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, equinox.WriteDocument(t.Context(), &buf, original))

			reread, err := equinox.ReadDocument(t.Context(), &buf)
			require.NoError(t, err)

			treesEquivalent(t, original, reread)
		})
	}
}
