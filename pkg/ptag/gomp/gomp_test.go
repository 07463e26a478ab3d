package gomp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/ptag-dev/ptag/pkg/ptag"
	"github.com/ptag-dev/ptag/pkg/ptag/gomp"
)

func TestNodeRendersInsideGomponentsTree(t *testing.T) {
	tag := ptag.New("p", "hi")
	n := g.El("main", gomp.Node(tag))

	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	assert.Equal(t, "<main><p>hi</p></main>", sb.String())
}

func TestNodeRendersLazily(t *testing.T) {
	tag := ptag.New("p")
	n := gomp.Node(tag)
	tag.Add("later")

	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	assert.Equal(t, "<p>later</p>", sb.String())
}

func TestGroup(t *testing.T) {
	n := g.El("ul", gomp.Group(ptag.New("li", "one"), ptag.New("li", "two")))

	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	assert.Equal(t, "<ul><li>one</li><li>two</li></ul>", sb.String())
}
