package ptag

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInAttachesChildren(t *testing.T) {
	ul := In(New("ul"), func() {
		New("li", "one")
		New("li", "two")
	})
	assert.Equal(t, "<ul><li>one</li><li>two</li></ul>", ul.Render())
}

func TestInWithInitialContent(t *testing.T) {
	div := In(New("div", "hello"), func() {
		New("p", "world")
		New("p", "🎉")
	})
	assert.Equal(t, "<div>hello<p>world</p><p>🎉</p></div>", div.Render())
}

func TestNestedContexts(t *testing.T) {
	div := In(New("div"), func() {
		New("p", "hello")
		In(New("p", "shing"), func() {
			New("span", "world")
		})
	})
	assert.Equal(t, "<div><p>hello</p><p>shing<span>world</span></p></div>", div.Render())
}

func TestNestedContextsWithAdd(t *testing.T) {
	div := New("div")
	In(div, func() {
		New("p", "hello")
		In(New("p"), func() {
			New("span", "world")
		})
		div.Add("shing")
	})
	assert.Equal(t, "<div><p>hello</p><p><span>world</span></p>shing</div>", div.Render())
}

func TestExplicitParentWins(t *testing.T) {
	// t1 and t2 first attach to the open html context; passing them as
	// content to the div must move them there, not duplicate them.
	doc := In(New("html"), func() {
		t1 := New("i", "hello")
		t2 := New("p", "world")
		New("div", []*Tag{t1, t2})
		In(New("p", "something"), func() {
			New("span", "yeah")
		})
	})
	assert.Equal(t,
		"<html><div><i>hello</i><p>world</p></div><p>something<span>yeah</span></p></html>",
		doc.Render())
}

func TestAttributesInsideContext(t *testing.T) {
	div := In(New("div", nil, Attr("id", "foo"), Attr("class", "bar")), func() {
		New("p", "rock", Attr("for", "baz"))
	})
	assert.Equal(t, `<div id="foo" class="bar"><p for="baz">rock</p></div>`, div.Render())
}

func TestStackUnwindsOnPanic(t *testing.T) {
	b := NewBuilder()
	div := b.New("div")
	assert.Panics(t, func() {
		b.In(div, func() { panic("boom") })
	})
	// The stack must be empty again: new tags are detached.
	p := b.New("p", "x")
	assert.Equal(t, "<div/>", div.Render())
	assert.Equal(t, "<p>x</p>", p.Render())
}

func TestOpenClose(t *testing.T) {
	b := NewBuilder()
	ul := b.Open(b.New("ul"))
	b.New("li", "a")
	b.Close()
	b.New("li", "detached")
	assert.Equal(t, "<ul><li>a</li></ul>", ul.Render())
}

func TestCloseWithoutOpenPanics(t *testing.T) {
	b := NewBuilder()
	assert.Panics(t, b.Close)
}

func TestDefaultOpenClose(t *testing.T) {
	ul := Open(New("ul"))
	New("li", "a")
	Close()
	assert.Equal(t, "<ul><li>a</li></ul>", ul.Render())
}

func TestBuildersAreIndependent(t *testing.T) {
	// One builder per goroutine keeps concurrent construction isolated.
	const n = 8
	results := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := NewBuilder()
			ul := b.In(b.New("ul"), func() {
				b.New("li", fmt.Sprintf("item-%d", i))
			})
			results[i] = ul.Render()
		}(i)
	}
	wg.Wait()
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("<ul><li>item-%d</li></ul>", i), results[i])
	}
}
