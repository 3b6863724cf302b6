// Package arenatree provides a generic tree whose nodes live in a single
// flat arena and reference each other by stable integer handles.
//
// Trees with mutable parent/child links are awkward to express with direct
// object references: every relationship wants to point both ways, and the
// resulting aliasing invites either reference counting or subtle sharing
// bugs. The arena sidesteps the whole problem — one slice exclusively owns
// every node, and parent/child relationships are plain int indices into
// that slice. Handles are stable for the lifetime of the arena because
// nodes are never removed or reindexed.
//
// Construction is value-driven and idempotent:
//
//	tree := arenatree.NewTree[string]()
//	root := tree.FindOrAddNode("/")        // linear equality scan, then append
//	usr := tree.FindOrAddNode("usr")
//	tree.SetParentChild(root, usr)         // links both directions atomically
//
// FindOrAddNode deduplicates by value equality, so replaying the same
// construction sequence never produces duplicate nodes. SetParentChild is
// the single mutator of relationships: it detaches the child from any
// previous parent first (one-parent invariant) and never duplicates a
// child entry, so repeated calls with the same pair are idempotent.
// Children keep insertion order, and Traverse walks them pre-order,
// reporting the depth of each node counted from 0 at the traversal root.
//
// By caller convention at most one node carries no parent and acts as the
// logical root; the arena does not enforce this. There is no cycle
// detection either: the tree trusts its caller to only build true trees,
// and a caller-induced cycle makes Traverse recurse without termination.
// Deletion and compaction are out of scope — the arena is append-only.
//
// Complexity: FindOrAddNode/FindNode/FindNodeBy are O(n) linear scans;
// SetParentChild is O(degree of the previous parent); Traverse is O(n).
package arenatree
