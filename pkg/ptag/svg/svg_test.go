package svg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ptag-dev/ptag/pkg/ptag"
	"github.com/ptag-dev/ptag/pkg/ptag/svg"
)

func TestCircle(t *testing.T) {
	assert.Equal(t, `<circle r="4"/>`, svg.Circle(nil, ptag.Attr("r", "4")).Render())
}

func TestCamelCaseTags(t *testing.T) {
	assert.Equal(t, "<feGaussianBlur/>", svg.FeGaussianBlur().Render())
	assert.Equal(t, "<textPath>curve</textPath>", svg.TextPath("curve").Render())
}

func TestDrawing(t *testing.T) {
	drawing := ptag.In(svg.SVG(nil, ptag.Attr("viewBox", "0 0 10 10")), func() {
		svg.Circle(nil, ptag.Attr("cx", "5"), ptag.Attr("cy", "5"), ptag.Attr("r", "4"))
		svg.Text("hi", ptag.Attr("x", "5"), ptag.Attr("y", "5"))
	})
	assert.Equal(t,
		`<svg viewBox="0 0 10 10"><circle cx="5" cy="5" r="4"/><text x="5" y="5">hi</text></svg>`,
		drawing.Render())
}
