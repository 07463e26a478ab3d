package ptag

import (
	"io"
	"strings"
)

// attrEscaper makes attribute values round-trip safe for the characters that
// would otherwise terminate or restructure the markup.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Render serializes the tree compactly: no inserted whitespace, <name/> for
// childless tags, attributes in insertion order, text children verbatim.
func (t *Tag) Render() string {
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}

// String is Render, so tags print naturally with fmt.
func (t *Tag) String() string {
	return t.Render()
}

// WriteTo writes the compact rendering to w.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}

func (t *Tag) render(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(t.name)
	t.renderAttrs(sb, false)
	if len(t.children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range t.children {
		if c.tag != nil {
			c.tag.render(sb)
		} else {
			sb.WriteString(c.text)
		}
	}
	sb.WriteString("</")
	sb.WriteString(t.name)
	sb.WriteByte('>')
}

// renderAttrs writes the space-prefixed attribute list. Pretty mode cannot
// express bare attributes, so there they render as key="".
func (t *Tag) renderAttrs(sb *strings.Builder, pretty bool) {
	for _, a := range t.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.key)
		if a.state == attrBare && !pretty {
			continue
		}
		sb.WriteString(`="`)
		if a.state == attrValued {
			sb.WriteString(attrEscaper.Replace(a.value))
		}
		sb.WriteByte('"')
	}
}
