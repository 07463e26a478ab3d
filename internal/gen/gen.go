// Package gen emits the pregenerated element-constructor packages. One
// exported constructor per tag keeps call sites go-to-definition friendly,
// which a reflection- or map-based registry would not.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
)

// Element vocabularies. HTML per https://www.w3schools.com/tags/, SVG per
// https://developer.mozilla.org/en-US/docs/Web/SVG/Element.
const (
	htmlTags = "a abbr acronym address applet area article aside audio b base basefont bdi bdo big blockquote body br button " +
		"canvas caption center cite code col colgroup data datalist dd del details dfn dialog dir div dl dt em embed " +
		"fieldset figcaption figure font footer form frame frameset h1 h2 h3 h4 h5 h6 head header hgroup hr html " +
		"i iframe img input ins kbd label legend li link main map mark menu meta meter nav noframes noscript " +
		"object ol optgroup option output p param picture pre progress q rp rt ruby " +
		"s samp script search section select small source span strike strong style sub summary sup svg " +
		"table tbody td template textarea tfoot th thead time title tr track tt u ul var video wbr"

	svgTags = "a animate animateMotion animateTransform circle clipPath defs desc ellipse " +
		"feBlend feColorMatrix feComponentTransfer feComposite feConvolveMatrix feDiffuseLighting feDisplacementMap " +
		"feDistantLight feDropShadow feFlood feFuncA feFuncB feFuncG feFuncR feGaussianBlur feImage feMerge feMergeNode " +
		"feMorphology feOffset fePointLight feSpecularLighting feSpotLight feTile feTurbulence filter foreignObject " +
		"g image line linearGradient marker mask metadata mpath path pattern polygon polyline " +
		"radialGradient rect script set stop style svg switch symbol text textPath title tspan use view"
)

// identOverrides fixes the tags whose exported identifier plain
// capitalization would get wrong. Go's export rule already absorbs the
// reserved-word collisions the original Python aliases existed for (del,
// input, map, object become Del, Input, Map, Object); this table is the
// whole remaining rename set and must not grow into a general mechanism.
var identOverrides = map[string]string{
	"html": "HTML",
	"svg":  "SVG",
}

// Tags returns the sorted, deduplicated vocabulary for pkg ("html" or
// "svg").
func Tags(pkg string) ([]string, error) {
	var raw string
	switch pkg {
	case "html":
		raw = htmlTags
	case "svg":
		raw = svgTags
	default:
		return nil, fmt.Errorf("gen: unknown package %q", pkg)
	}
	seen := map[string]bool{}
	var tags []string
	for _, tag := range strings.Fields(raw) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// Ident maps a tag name to its exported constructor identifier.
func Ident(tag string) string {
	if name, ok := identOverrides[tag]; ok {
		return name
	}
	return strings.ToUpper(tag[:1]) + tag[1:]
}

// File renders the complete gofmt'd source of the element package pkg.
func File(pkg string) ([]byte, error) {
	tags, err := Tags(pkg)
	if err != nil {
		return nil, err
	}

	byIdent := map[string]string{}
	for _, tag := range tags {
		id := Ident(tag)
		if prev, ok := byIdent[id]; ok {
			return nil, fmt.Errorf("gen: identifier %s generated by both %q and %q", id, prev, tag)
		}
		byIdent[id] = tag
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by ptaggen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "// Package %s provides one ptag constructor per %s element.\n", pkg, strings.ToUpper(pkg))
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"github.com/ptag-dev/ptag/pkg/ptag\"\n\n")
	for _, tag := range tags {
		fmt.Fprintf(&buf, "// %s constructs a %q element.\n", Ident(tag), tag)
		fmt.Fprintf(&buf, "func %s(args ...any) *ptag.Tag { return ptag.New(%q, args...) }\n\n", Ident(tag), tag)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format %s: %w", pkg, err)
	}
	return src, nil
}
