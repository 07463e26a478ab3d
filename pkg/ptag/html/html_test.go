package html_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ptag-dev/ptag/pkg/ptag"
	"github.com/ptag-dev/ptag/pkg/ptag/html"
)

func TestBr(t *testing.T) {
	assert.Equal(t, "<br/>", html.Br().Render())
}

func TestDiv(t *testing.T) {
	assert.Equal(t, "<div>hello</div>", html.Div("hello").Render())
}

func TestForm(t *testing.T) {
	f := ptag.In(html.Form(), func() {
		html.Label("Agree to terms", ptag.Attr("for", "agree"))
		html.Input(nil, "checked", ptag.Attr("name", "agree"), ptag.Attr("type", "checkbox"))
	})
	assert.Equal(t,
		`<form><label for="agree">Agree to terms</label><input checked name="agree" type="checkbox"/></form>`,
		f.Render())
}

func TestCapitalizedReservedWords(t *testing.T) {
	// Python ptag needed del_, input_, map_ and object_; Go's export rule
	// absorbs the collision.
	assert.Equal(t, "<del>x</del>", html.Del("x").Render())
	assert.Equal(t, "<map/>", html.Map().Render())
	assert.Equal(t, "<object/>", html.Object().Render())
}

func TestHTMLOverride(t *testing.T) {
	doc := ptag.In(html.HTML(), func() {
		html.Body("hi")
	})
	assert.Equal(t, "<html><body>hi</body></html>", doc.Render())
}

func TestPrettyDocument(t *testing.T) {
	doc := ptag.In(html.HTML(), func() {
		html.Div("hello").Add(html.P("world"))
		ptag.In(html.P("something"), func() {
			html.Span("yeah")
		})
	})

	want := "<html>\n" +
		"    <div>\n" +
		"        hello\n" +
		"        <p>world</p>\n" +
		"    </div>\n" +
		"    <p>\n" +
		"        something\n" +
		"        <span>yeah</span>\n" +
		"    </p>\n" +
		"</html>\n"
	assert.Equal(t, want, doc.RenderPretty())
}
