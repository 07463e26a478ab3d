package ptag

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Parse reads existing markup into a Tag tree, preserving attribute and
// child order. The returned tree is detached: it never attaches to an open
// builder context. Elements parsed without children render self-closing, so
// <script></script> comes back as <script/>. Comments and processing
// instructions are dropped.
func Parse(markup string) (*Tag, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, fmt.Errorf("ptag: parse markup: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("ptag: markup has no root element")
	}
	return fromElement(root), nil
}

func fromElement(e *etree.Element) *Tag {
	t := &Tag{name: e.FullTag()}
	for _, a := range e.Attr {
		t.setAttr(a.FullKey(), a.Value, attrValued)
	}
	for _, tok := range e.Child {
		switch c := tok.(type) {
		case *etree.Element:
			t.adopt(fromElement(c))
		case *etree.CharData:
			t.children = append(t.children, child{text: c.Data})
		}
	}
	return t
}

// ToEtree exports the tree as an etree document, for callers feeding XML
// pipelines. Bare attributes export with an empty value.
func (t *Tag) ToEtree() *etree.Document {
	doc := etree.NewDocument()
	t.toElement(&doc.Element)
	return doc
}

func (t *Tag) toElement(parent *etree.Element) {
	e := parent.CreateElement(t.name)
	for _, a := range t.attrs {
		e.CreateAttr(a.key, a.value)
	}
	for _, c := range t.children {
		if c.tag != nil {
			c.tag.toElement(e)
		} else {
			e.CreateText(c.text)
		}
	}
}
