package ptag

import "strings"

// DefaultIndent is the indent unit used by RenderPretty.
const DefaultIndent = "    "

// RenderPretty serializes the tree with one child per line, indented one
// DefaultIndent per nesting level, the closing tag on its own line at the
// parent's level, and a trailing newline. An element whose only child is a
// single text string stays on one line.
//
// Bare attributes have no valid indented form and render as key="" here;
// avoid Flag and bare-string attributes on trees meant for pretty output.
func (t *Tag) RenderPretty() string {
	return t.RenderPrettyIndent(DefaultIndent)
}

// RenderPrettyIndent is RenderPretty with a caller-chosen indent unit.
func (t *Tag) RenderPrettyIndent(indent string) string {
	var sb strings.Builder
	t.pretty(&sb, indent, 0)
	sb.WriteByte('\n')
	return sb.String()
}

func (t *Tag) pretty(sb *strings.Builder, indent string, level int) {
	sb.WriteByte('<')
	sb.WriteString(t.name)
	t.renderAttrs(sb, true)
	if len(t.children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	if len(t.children) == 1 && t.children[0].tag == nil {
		sb.WriteString(t.children[0].text)
	} else {
		inner := strings.Repeat(indent, level+1)
		for _, c := range t.children {
			sb.WriteByte('\n')
			sb.WriteString(inner)
			if c.tag != nil {
				c.tag.pretty(sb, indent, level+1)
			} else {
				sb.WriteString(c.text)
			}
		}
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(indent, level))
	}
	sb.WriteString("</")
	sb.WriteString(t.name)
	sb.WriteByte('>')
}
