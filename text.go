package equinox

// Text is a leaf node holding a mutable string payload.
type Text struct {
	treeNode
	content string
}

var _ Node = (*Text)(nil)

// NewText creates a detached Text node. An empty payload is allowed.
func NewText(content string) *Text {
	return &Text{content: content}
}

func (*Text) Type() NodeType {
	return TextNode
}

func (*Text) Name() string {
	return "#text"
}

func (t *Text) Content() string {
	return t.content
}

func (t *Text) SetContent(content string) {
	t.content = content
}

func (t *Text) PrependSibling(v any) error {
	return prependSibling(t, v)
}

func (t *Text) AppendSibling(v any) error {
	return appendSibling(t, v)
}

func (t *Text) Substitute(v any) error {
	return substitute(t, v)
}

func (t *Text) Copy() Node {
	clone := &Text{content: t.content}
	clone.meta = t.meta
	return clone
}
