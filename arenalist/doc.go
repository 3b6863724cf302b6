// Package arenalist provides a generic doubly linked sequence whose nodes
// live in a single flat arena and reference each other by integer handles.
//
// The structure is deliberately modest: it is an indexable, append-only
// sequence with sequential-link metadata, not a general splice-able linked
// list. One slice exclusively owns every node; Prev/Next are plain int
// indices into that slice, so the usual pointer-aliasing headaches of
// doubly linked lists never arise.
//
//	list := arenalist.NewListFromSlice([]int{1, 2, 3})
//	list.Push(4)                  // O(1) append, links patched both ways
//	v, ok := list.Get(2)          // O(1) positional access
//	list.Traverse(func(p *int) { ... })        // head→tail via Next
//	list.TraverseReverse(func(p *int) { ... }) // tail→head via Prev
//
// The Prev/Next links exist so a single structure supports both sequential
// iteration and positional indexing without a separately maintained index
// map. They are guaranteed consistent only for nodes built via Push and
// removed via Pop: mutating values through Get does not, and is not meant
// to, maintain cross-links. Do not extend this list toward arbitrary
// insertion or removal without adding real relinking logic.
//
// Pop removes only from the tail and reports absence on an empty list;
// there is no internal-node deletion. Like the rest of the library, a list
// is single-owner and unsynchronized.
//
// Complexity: Push, Pop, Get, Head/Tail, First/Last are O(1);
// Traverse/TraverseReverse are O(n).
package arenalist
