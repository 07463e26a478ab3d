// Package ptag builds HTML, XML and SVG markup trees from plain function
// calls instead of template files.
//
// A Tag is one element: a name, ordered children (text or nested tags) and an
// ordered attribute list. Tags nest either explicitly, by passing a child as
// the content argument, or ambiently, by constructing them inside an In block:
//
//	list := ptag.In(ptag.New("ul"), func() {
//		ptag.New("li", "one")
//		ptag.New("li", "two")
//	})
//	list.Render() // <ul><li>one</li><li>two</li></ul>
//
// The generated html and svg subpackages provide one constructor per element,
// so the same tree reads html.Ul, html.Li and so on.
package ptag

import "fmt"

//go:generate go run github.com/ptag-dev/ptag/cmd/ptaggen -out .

// Tag is one markup element. The zero value is not usable; construct tags
// with New or the generated element constructors.
type Tag struct {
	name     string
	children []child
	attrs    []attr
	parent   *Tag
}

// child is one ordered child slot: a nested tag, or literal text when tag is
// nil.
type child struct {
	tag  *Tag
	text string
}

// New constructs a tag. The first of args, when present, is the content:
//
//   - nil: no children (the tag renders self-closing)
//   - string: one text child; "" still counts, forcing the <n></n> form
//   - *Tag: one nested child
//   - []any, []*Tag or []string: children appended in order
//
// Every remaining arg is an attribute: a plain string becomes a bare
// (valueless) attribute keyed by its text, an AttrArg a named one. A leading
// AttrArg skips the content slot, so New("img", Attr("src", u)) needs no nil.
//
// If a builder context is open (see In), the new tag is appended to the open
// tag's children. Passing a tag as content to a later call reparents it, so
// explicit parenting always wins over the ambient context.
//
// Content or attribute arguments of any other type are caller misuse and
// panic; nothing is coerced.
func New(name string, args ...any) *Tag {
	return defaultBuilder.New(name, args...)
}

// New is New with the tag attached to this builder's open context, if any.
func (b *Builder) New(name string, args ...any) *Tag {
	t := &Tag{name: name}
	t.apply(args)
	if open := b.open(); open != nil {
		open.adopt(t)
	}
	return t
}

// Add appends content and merges attributes into an existing tag, with the
// same argument convention as New, and returns the tag for chaining. Tags
// that are already children of the receiver are not appended twice; an
// attribute supplied with a nil OptAttr is removed.
func (t *Tag) Add(args ...any) *Tag {
	t.apply(args)
	return t
}

// Name returns the element name as it will appear in output.
func (t *Tag) Name() string {
	return t.name
}

func (t *Tag) apply(args []any) {
	if len(args) > 0 {
		// An AttrArg can never be content, so a leading one just means the
		// content slot was skipped.
		if _, ok := args[0].(AttrArg); !ok {
			t.appendContent(args[0])
			args = args[1:]
		}
	}
	for _, a := range args {
		switch v := a.(type) {
		case string:
			t.setAttr(v, "", attrBare)
		case AttrArg:
			t.setAttr(v.key, v.value, v.state)
		default:
			panic(fmt.Sprintf("ptag: invalid attribute argument type %T", a))
		}
	}
}

func (t *Tag) appendContent(content any) {
	switch c := content.(type) {
	case nil:
	case string:
		t.children = append(t.children, child{text: c})
	case *Tag:
		t.adopt(c)
	case []any:
		for _, item := range c {
			switch v := item.(type) {
			case string:
				t.children = append(t.children, child{text: v})
			case *Tag:
				t.adopt(v)
			default:
				panic(fmt.Sprintf("ptag: invalid content item type %T", item))
			}
		}
	case []*Tag:
		for _, v := range c {
			t.adopt(v)
		}
	case []string:
		for _, v := range c {
			t.children = append(t.children, child{text: v})
		}
	default:
		panic(fmt.Sprintf("ptag: invalid content type %T", content))
	}
}

// adopt appends ct as the last child, detaching it from any previous parent
// first. Adopting the receiver or one of its ancestors would create a cycle
// and panics.
func (t *Tag) adopt(ct *Tag) {
	if ct == nil {
		return
	}
	if ct.parent == t {
		return
	}
	for a := t; a != nil; a = a.parent {
		if a == ct {
			panic("ptag: adding a tag to its own subtree would create a cycle")
		}
	}
	if ct.parent != nil {
		ct.parent.removeChild(ct)
	}
	ct.parent = t
	t.children = append(t.children, child{tag: ct})
}

func (t *Tag) removeChild(ct *Tag) {
	for i, c := range t.children {
		if c.tag == ct {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return
		}
	}
}

// setAttr writes one attribute slot. A key keeps its first-inserted position
// across overwrites; the absent state drops the key entirely.
func (t *Tag) setAttr(key, value string, state attrState) {
	for i := range t.attrs {
		if t.attrs[i].key == key {
			if state == attrAbsent {
				t.attrs = append(t.attrs[:i], t.attrs[i+1:]...)
			} else {
				t.attrs[i].value = value
				t.attrs[i].state = state
			}
			return
		}
	}
	if state == attrAbsent {
		return
	}
	t.attrs = append(t.attrs, attr{key: key, value: value, state: state})
}
