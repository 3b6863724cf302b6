package arenatree

import "fmt"

// NewTree returns an empty tree arena.
func NewTree[T comparable]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of nodes in the arena.
func (t *Tree[T]) Len() int { return len(t.nodes) }

// Node returns the node addressed by handle, or nil when the handle is out
// of range. The returned pointer stays valid until the next node insertion
// (the arena may reallocate as it grows), so hold handles, not pointers.
func (t *Tree[T]) Node(handle int) *Node[T] {
	if handle < 0 || handle >= len(t.nodes) {
		return nil
	}

	return &t.nodes[handle]
}

// FindOrAddNode returns the handle of the node holding value, appending a
// fresh detached node (no parent, no children) when none exists. The
// linear equality scan makes construction idempotent: replaying the same
// value never creates a duplicate. O(n).
func (t *Tree[T]) FindOrAddNode(value T) int {
	if handle, ok := t.FindNode(value); ok {
		return handle
	}

	handle := len(t.nodes)
	t.nodes = append(t.nodes, Node[T]{
		Index:  handle,
		Value:  value,
		Parent: NoParent,
	})

	return handle
}

// FindNode returns the handle of the first node equal to value, in arena
// insertion order. O(n).
func (t *Tree[T]) FindNode(value T) (int, bool) {
	for i := range t.nodes {
		if t.nodes[i].Value == value {
			return i, true
		}
	}

	return NoParent, false
}

// FindNodeBy returns the handle of the first node satisfying pred, in
// arena insertion order. O(n).
func (t *Tree[T]) FindNodeBy(pred func(*Node[T]) bool) (int, bool) {
	for i := range t.nodes {
		if pred(&t.nodes[i]) {
			return i, true
		}
	}

	return NoParent, false
}

// SetParentChild establishes parent as the parent of child, updating both
// sides of the relationship in one step: child's Parent link and parent's
// Children membership never disagree. The child is detached from any
// previous parent's child list first, preserving the one-parent invariant,
// and a child already present is not duplicated, so repeated calls with
// the same pair are idempotent. Panics with ErrBadHandle context when
// either handle is out of range.
func (t *Tree[T]) SetParentChild(parent, child int) {
	t.mustContain(parent)
	t.mustContain(child)

	if prev := t.nodes[child].Parent; prev != NoParent && prev != parent {
		t.removeChild(prev, child)
	}

	if !t.hasChild(parent, child) {
		t.nodes[parent].Children = append(t.nodes[parent].Children, child)
	}
	t.nodes[child].Parent = parent
}

// Traverse walks the subtree rooted at root pre-order, calling visit with
// each node and its depth counted from 0 at root. Children are visited in
// insertion order. Panics with ErrBadHandle context on an out-of-range
// root; a caller-induced cycle recurses without termination. O(n).
func (t *Tree[T]) Traverse(root int, visit func(n *Node[T], depth int)) {
	t.mustContain(root)
	t.traverse(root, visit, 0)
}

func (t *Tree[T]) traverse(handle int, visit func(n *Node[T], depth int), depth int) {
	node := &t.nodes[handle]
	visit(node, depth)

	for _, child := range node.Children {
		t.traverse(child, visit, depth+1)
	}
}

// hasChild reports whether child already appears in parent's child list.
func (t *Tree[T]) hasChild(parent, child int) bool {
	for _, c := range t.nodes[parent].Children {
		if c == child {
			return true
		}
	}

	return false
}

// removeChild drops child from parent's child list, preserving the order
// of the remaining children.
func (t *Tree[T]) removeChild(parent, child int) {
	children := t.nodes[parent].Children
	for i, c := range children {
		if c == child {
			t.nodes[parent].Children = append(children[:i], children[i+1:]...)

			return
		}
	}
}

func (t *Tree[T]) mustContain(handle int) {
	if handle < 0 || handle >= len(t.nodes) {
		panic(fmt.Sprintf("%v: %d with %d nodes", ErrBadHandle, handle, len(t.nodes)))
	}
}
