package values

// node is one cell of a persistent, singly-linked list. Cells are
// immutable once published: a node is only ever mutated while a
// ListBuilder holds the sole reference to it, before release.
type node struct {
	head Value
	tail *node // nil at the end of the list
}

// List is a reference to a persistent list node, or the empty list
// when n is nil. The same representation backs both the List and
// Vector tags; vecTag distinguishes them for equality and printing.
type List struct {
	meta
	n      *node
	vecTag bool
}

func (l List) Kind() Kind {
	if l.vecTag {
		return KindVector
	}
	return KindList
}

func (l List) WithMeta(m Value) Value {
	l.meta = newMetaCell(m)
	return l
}

// EmptyList and EmptyVector are the canonical empty sequences.
var (
	EmptyList   Value = List{vecTag: false}
	EmptyVector Value = List{vecTag: true}
)

// NewList builds a List from elements in order, O(n).
func NewList(elems ...Value) Value { return buildSeq(false, elems) }

// NewVector builds a Vector from elements in order, O(n).
func NewVector(elems ...Value) Value { return buildSeq(true, elems) }

func buildSeq(vec bool, elems []Value) Value {
	b := NewListBuilder(vec)
	for _, e := range elems {
		b.Append(e)
	}
	return b.List()
}

// Cons prepends x to l, sharing l's underlying nodes. O(1). Always
// produces a List, never a Vector, regardless of l's own tag.
func Cons(x Value, l List) List {
	return List{n: &node{head: x, tail: l.n}, vecTag: false}
}

// AsList coerces v (a List, Vector, or Nil) to its underlying List
// representation, or reports ok=false for anything else.
func AsList(v Value) (List, bool) {
	switch t := v.(type) {
	case List:
		return t, true
	case nilValue:
		return List{}, true
	default:
		return List{}, false
	}
}

// GetSize walks the node chain and returns its length, O(n).
func (l List) GetSize() int {
	n := 0
	for c := l.n; c != nil; c = c.tail {
		n++
	}
	return n
}

// Empty reports whether the list has no elements.
func (l List) Empty() bool { return l.n == nil }

// At returns the i-th element (0-indexed), or (Nil, false) if out of
// range. O(i).
func (l List) At(i int) (Value, bool) {
	if i < 0 {
		return Nil, false
	}
	c := l.n
	for ; i > 0 && c != nil; i-- {
		c = c.tail
	}
	if c == nil {
		return Nil, false
	}
	return c.head, true
}

// First returns the first element, or Nil if empty.
func (l List) First() Value {
	if l.n == nil {
		return Nil
	}
	return l.n.head
}

// Rest returns a List of every element but the first, sharing tail
// storage; empty (on either input) returns the empty list, always
// tagged List.
func (l List) Rest() Value {
	if l.n == nil {
		return EmptyList
	}
	return List{n: l.n.tail, vecTag: false}
}

// Slice materializes the list's elements into a Go slice, O(n).
func (l List) Slice() []Value {
	out := make([]Value, 0, l.GetSize())
	for c := l.n; c != nil; c = c.tail {
		out = append(out, c.head)
	}
	return out
}

// Concat appends the elements of more after l's own elements, copying
// every element of l and of more, O(total length).
// The tag of the result follows l's own tag.
func (l List) Concat(more ...List) List {
	b := NewListBuilder(l.vecTag)
	for c := l.n; c != nil; c = c.tail {
		b.Append(c.head)
	}
	for _, m := range more {
		for c := m.n; c != nil; c = c.tail {
			b.Append(c.head)
		}
	}
	return b.list()
}

// ListBuilder constructs a list by appending, holding exclusive
// ownership of its growing chain until List() publishes it. Do not
// retain a ListBuilder after calling List().
type ListBuilder struct {
	vecTag bool
	head   *node
	tail   *node
}

// NewListBuilder starts a new builder; vecTag selects whether the
// eventual List() result is tagged List or Vector.
func NewListBuilder(vecTag bool) *ListBuilder {
	return &ListBuilder{vecTag: vecTag}
}

// Append adds v as the new last element, O(1) amortized.
func (b *ListBuilder) Append(v Value) {
	n := &node{head: v}
	if b.tail == nil {
		b.head = n
		b.tail = n
		return
	}
	b.tail.tail = n
	b.tail = n
}

func (b *ListBuilder) list() List {
	return List{n: b.head, vecTag: b.vecTag}
}

// List publishes the built chain as a Value. The builder must not be
// appended to again afterward, since the nodes are now shared.
func (b *ListBuilder) List() Value { return b.list() }
