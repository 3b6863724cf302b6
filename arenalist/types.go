// Package arenalist defines the node and list types for the arena-backed
// linked sequence.
package arenalist

// NoLink is the Prev/Next value of a node with no neighbor on that side.
const NoLink = -1

// Node is a single list node. Fields are exported for callers that walk
// links directly; link maintenance is reserved to Push and Pop.
type Node[T any] struct {
	// Index is the node's own handle in the arena.
	Index int
	// Value is the caller's payload.
	Value T
	// Prev is the handle of the preceding node, or NoLink.
	Prev int
	// Next is the handle of the following node, or NoLink.
	Next int
}

// List is a growable arena of sequentially linked nodes. The zero value is
// ready to use, but NewList is the conventional constructor.
type List[T any] struct {
	nodes []Node[T]
}
