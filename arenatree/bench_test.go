package arenatree_test

import (
	"testing"

	"github.com/katalvlaran/arenakit/arenatree"
)

// buildWide builds a tree of n nodes: one root with n-1 direct children.
func buildWide(n int) (*arenatree.Tree[int], int) {
	tree := arenatree.NewTree[int]()
	root := tree.FindOrAddNode(0)
	for i := 1; i < n; i++ {
		child := tree.FindOrAddNode(i)
		tree.SetParentChild(root, child)
	}

	return tree, root
}

// BenchmarkTree_FindOrAddNode measures the linear-scan insertion path on a
// growing arena. Complexity: O(n) per call, O(n²) for the whole build.
func BenchmarkTree_FindOrAddNode(b *testing.B) {
	const n = 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := arenatree.NewTree[int]()
		for v := 0; v < n; v++ {
			tree.FindOrAddNode(v)
		}
	}
}

// BenchmarkTree_Traverse measures a full pre-order walk of a 10000-node
// tree. Complexity: O(n).
func BenchmarkTree_Traverse(b *testing.B) {
	tree, root := buildWide(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Traverse(root, func(*arenatree.Node[int], int) {})
	}
}
