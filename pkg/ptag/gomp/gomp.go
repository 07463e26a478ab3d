// Package gomp bridges ptag trees into gomponents pipelines.
package gomp

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/ptag-dev/ptag/pkg/ptag"
)

type node struct {
	t *ptag.Tag
}

// Node wraps t so it can be spliced anywhere a gomponents Node is expected.
// Rendering is deferred until the surrounding tree renders.
func Node(t *ptag.Tag) g.Node {
	return node{t}
}

func (n node) Render(w io.Writer) error {
	_, err := n.t.WriteTo(w)
	return err
}

// Group wraps several tags as one gomponents Node, rendered in order.
func Group(tags ...*ptag.Tag) g.Node {
	nodes := make([]g.Node, len(tags))
	for i, t := range tags {
		nodes[i] = Node(t)
	}
	return g.Group(nodes)
}
