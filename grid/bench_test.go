package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/arenakit/grid"
)

// BenchmarkRowGrid_PushRow measures incremental construction of a
// 1000×1000 grid, one row at a time. Complexity: O(W×H) total.
func BenchmarkRowGrid_PushRow(b *testing.B) {
	const n = 1000
	row := make([]int, n)
	for x := range row {
		row[x] = x
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := grid.NewRowGrid[int](n)
		for y := 0; y < n; y++ {
			g.PushRow(row)
		}
	}
}

// BenchmarkGrid_Cell measures random bounds-checked reads on a 1000×1000
// uniform grid. Complexity: O(1) per read.
func BenchmarkGrid_Cell(b *testing.B) {
	const n = 1000
	g := grid.NewUniformGrid[int](n, n)
	rng := rand.New(rand.NewSource(42))
	xs := make([]int, 1024)
	ys := make([]int, 1024)
	for i := range xs {
		xs[i] = rng.Intn(n)
		ys[i] = rng.Intn(n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Cell(xs[i%1024], ys[i%1024])
	}
}

// BenchmarkGrid_FindAll measures a full row-major scan of a 1000×1000
// grid. Complexity: O(W×H).
func BenchmarkGrid_FindAll(b *testing.B) {
	const n = 1000
	g := grid.NewUniformGrid[int](n, n)
	rng := rand.New(rand.NewSource(42))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.Set(x, y, rng.Intn(100))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.FindAll(func(v int) bool { return v == 0 })
	}
}
