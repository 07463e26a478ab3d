package ptag

// attrState distinguishes the three attribute shapes: dropped entirely,
// bare (key with no value), and valued (key="value").
type attrState uint8

const (
	attrAbsent attrState = iota
	attrBare
	attrValued
)

type attr struct {
	key   string
	value string
	state attrState
}

// AttrArg is a single named-attribute argument for New or Add. Build one
// with Attr, Flag or OptAttr.
type AttrArg struct {
	key   string
	value string
	state attrState
}

// Attr sets key="value". An empty value still renders, as key="".
func Attr(key, value string) AttrArg {
	return AttrArg{key: key, value: value, state: attrValued}
}

// Flag sets a bare attribute: key with no value, as in <option selected>.
func Flag(key string) AttrArg {
	return AttrArg{key: key, state: attrBare}
}

// OptAttr sets key="value" when value is non-nil. A nil value is the absent
// sentinel: the attribute is dropped, and an existing one removed. This is
// the conditional-attribute form:
//
//	ptag.New("a", "home", ptag.OptAttr("href", maybeURL))
func OptAttr(key string, value *string) AttrArg {
	if value == nil {
		return AttrArg{key: key, state: attrAbsent}
	}
	return Attr(key, *value)
}
