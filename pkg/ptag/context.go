package ptag

// Builder tracks the currently open tags for ambient attachment. Each
// Builder is an independent stack: confine one to each goroutine that builds
// trees concurrently. The package-level New, In, Open and Close operate on a
// shared default Builder and are meant for single-goroutine use, like the
// generated element constructors.
type Builder struct {
	stack []*Tag
}

// NewBuilder returns an empty, isolated builder context.
func NewBuilder() *Builder {
	return &Builder{}
}

var defaultBuilder = NewBuilder()

// In opens t, runs fn, and closes t again, returning t so the block and the
// tag can be bound in one expression. Every tag constructed inside fn and
// not explicitly parented elsewhere becomes a child of t. Blocks nest
// arbitrarily; the stack is restored even when fn panics.
func In(t *Tag, fn func()) *Tag {
	return defaultBuilder.In(t, fn)
}

// In is In scoped to this builder.
func (b *Builder) In(t *Tag, fn func()) *Tag {
	b.Open(t)
	defer b.Close()
	fn()
	return t
}

// Open pushes t as the current open tag and returns it. Prefer In; Open and
// Close exist for the rare shape a closure cannot express.
func Open(t *Tag) *Tag {
	return defaultBuilder.Open(t)
}

// Open is Open scoped to this builder.
func (b *Builder) Open(t *Tag) *Tag {
	b.stack = append(b.stack, t)
	return t
}

// Close pops the current open tag, restoring the previous one. Closing with
// nothing open is caller misuse and panics.
func Close() {
	defaultBuilder.Close()
}

// Close is Close scoped to this builder.
func (b *Builder) Close() {
	if len(b.stack) == 0 {
		panic("ptag: Close without a matching Open")
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// open returns the current open tag, or nil.
func (b *Builder) open() *Tag {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}
