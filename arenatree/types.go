// Package arenatree defines the node type and sentinel errors for the
// arena-backed tree.
package arenatree

import "errors"

// NoParent is the Parent value of a node that has not been attached to any
// parent. It doubles as the "absent handle" sentinel throughout the package.
const NoParent = -1

// ErrBadHandle indicates a handle that does not address any node in the
// arena. It is used as panic payload context: a dangling handle means the
// caller's bookkeeping is broken, never a runtime condition to recover from.
var ErrBadHandle = errors.New("arenatree: handle out of range")

// Node is a single tree node. All fields are exported so callers can walk
// relationships directly (e.g. hop to Parent while interpreting a "cd .."
// command); mutation of Parent and Children is reserved to SetParentChild,
// which keeps the two sides of every relationship consistent.
type Node[T comparable] struct {
	// Index is the node's own handle in the arena.
	Index int
	// Value is the caller's payload; equality on it drives FindOrAddNode.
	Value T
	// Parent is the handle of the parent node, or NoParent.
	Parent int
	// Children holds child handles in insertion order.
	Children []int
}

// Tree is a growable arena of nodes. The zero value is ready to use, but
// NewTree is the conventional constructor.
type Tree[T comparable] struct {
	nodes []Node[T]
}
