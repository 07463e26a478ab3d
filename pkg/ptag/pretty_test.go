package ptag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyBasic(t *testing.T) {
	p := New("p", "hello").Add(New("i", "world"))
	assert.Equal(t, "<p>\n    hello\n    <i>world</i>\n</p>\n", p.RenderPretty())
}

func TestPrettySelfClosing(t *testing.T) {
	assert.Equal(t, "<br/>\n", New("br").RenderPretty())
}

func TestPrettySingleTextChildStaysInline(t *testing.T) {
	assert.Equal(t, "<p>world</p>\n", New("p", "world").RenderPretty())
	assert.Equal(t, "<br></br>\n", New("br", "").RenderPretty())
}

func TestPrettyNested(t *testing.T) {
	doc := In(New("html"), func() {
		New("div", "hello").Add(New("p", "world"))
		In(New("p", "something"), func() {
			New("span", "yeah")
		})
	})

	want := strings.Join([]string{
		"<html>",
		"    <div>",
		"        hello",
		"        <p>world</p>",
		"    </div>",
		"    <p>",
		"        something",
		"        <span>yeah</span>",
		"    </p>",
		"</html>",
		"",
	}, "\n")
	assert.Equal(t, want, doc.RenderPretty())
}

func TestPrettyCustomIndent(t *testing.T) {
	p := New("p", "hello").Add(New("i", "world"))
	assert.Equal(t, "<p>\n\thello\n\t<i>world</i>\n</p>\n", p.RenderPrettyIndent("\t"))
}

func TestPrettyBareAttributeRendersEmptyValue(t *testing.T) {
	i := New("input", nil, "checked", Attr("type", "checkbox"))
	assert.Equal(t, `<input checked="" type="checkbox"/>`+"\n", i.RenderPretty())
}

func TestPrettyStripsToCompact(t *testing.T) {
	// For trees without bare attributes or whitespace-bearing text, trimming
	// every pretty line and joining them reproduces the compact form.
	doc := In(New("div", nil, Attr("id", "bar")), func() {
		In(New("ul"), func() {
			New("li", "one")
			New("li", "two")
		})
		New("img", nil, Attr("src", "url"))
	})

	var joined strings.Builder
	for _, line := range strings.Split(doc.RenderPretty(), "\n") {
		joined.WriteString(strings.TrimSpace(line))
	}
	assert.Equal(t, doc.Render(), joined.String())
}
