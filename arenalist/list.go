package arenalist

// NewList returns an empty list arena.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// NewListFromSlice returns a list holding every item of items in order,
// with Prev/Next links consistent with that order. O(n).
func NewListFromSlice[T any](items []T) *List[T] {
	list := &List[T]{nodes: make([]Node[T], 0, len(items))}
	for _, item := range items {
		list.Push(item)
	}

	return list
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int { return len(l.nodes) }

// IsEmpty reports whether the list holds no nodes.
func (l *List[T]) IsEmpty() bool { return len(l.nodes) == 0 }

// Head returns the first node, or nil when the list is empty. The returned
// pointer stays valid until the next Push (the arena may reallocate), so
// hold handles, not pointers.
func (l *List[T]) Head() *Node[T] {
	if len(l.nodes) == 0 {
		return nil
	}

	return &l.nodes[0]
}

// Tail returns the last node, or nil when the list is empty.
func (l *List[T]) Tail() *Node[T] {
	if len(l.nodes) == 0 {
		return nil
	}

	return &l.nodes[len(l.nodes)-1]
}

// First returns a pointer to the first value, or (nil, false) when empty.
func (l *List[T]) First() (*T, bool) {
	if len(l.nodes) == 0 {
		return nil, false
	}

	return &l.nodes[0].Value, true
}

// Last returns a pointer to the last value, or (nil, false) when empty.
func (l *List[T]) Last() (*T, bool) {
	if len(l.nodes) == 0 {
		return nil, false
	}

	return &l.nodes[len(l.nodes)-1].Value, true
}

// Get returns a pointer to the i-th value for reading or in-place
// mutation, or (nil, false) when i is out of range. O(1) — the arena is a
// plain slice underneath. Mutating a value does not touch Prev/Next links.
func (l *List[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= len(l.nodes) {
		return nil, false
	}

	return &l.nodes[i].Value, true
}

// Push appends value at the tail and returns the new node's handle. The
// new node's Prev points at the former tail, whose Next is patched to the
// new node, keeping the chain consistent with insertion order. O(1).
func (l *List[T]) Push(value T) int {
	index := len(l.nodes)
	prev := NoLink
	if index > 0 {
		prev = index - 1
	}
	l.nodes = append(l.nodes, Node[T]{
		Index: index,
		Value: value,
		Prev:  prev,
		Next:  NoLink,
	})
	if prev != NoLink {
		l.nodes[prev].Next = index
	}

	return index
}

// Pop removes the tail node and returns its value, clearing the new tail's
// Next link. On an empty list it reports (zero, false) — an expected
// absent result, not a panic. O(1).
func (l *List[T]) Pop() (T, bool) {
	if len(l.nodes) == 0 {
		var zero T

		return zero, false
	}

	node := l.nodes[len(l.nodes)-1]
	l.nodes = l.nodes[:len(l.nodes)-1]
	if len(l.nodes) > 0 {
		l.nodes[len(l.nodes)-1].Next = NoLink
	}

	return node.Value, true
}

// Traverse walks head→tail following Next links, calling fn with a pointer
// to each value, until a NoLink link is reached. O(n).
func (l *List[T]) Traverse(fn func(*T)) {
	if len(l.nodes) == 0 {
		return
	}
	for i := 0; i != NoLink; i = l.nodes[i].Next {
		fn(&l.nodes[i].Value)
	}
}

// TraverseReverse walks tail→head following Prev links, calling fn with a
// pointer to each value, until a NoLink link is reached. O(n).
func (l *List[T]) TraverseReverse(fn func(*T)) {
	if len(l.nodes) == 0 {
		return
	}
	for i := len(l.nodes) - 1; i != NoLink; i = l.nodes[i].Prev {
		fn(&l.nodes[i].Value)
	}
}
