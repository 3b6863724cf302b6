// Package grid_test provides runnable examples for the grid package,
// showing both construction styles and the row-major scan contract.
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/arenakit/grid"
)

// ExampleRowGrid demonstrates building a grid row by row from parsed input
// and locating a unique marker with the deterministic first-match scan.
func ExampleRowGrid() {
	// Parse three lines of terrain into a 5-wide grid.
	g := grid.NewRowGrid[byte](5)
	for _, line := range []string{
		".....",
		"..S..",
		".....",
	} {
		g.PushRow([]byte(line))
	}

	// Find scans row-major (y outer, x inner), so a unique marker is
	// located deterministically.
	x, y, ok := g.Find(func(c byte) bool { return c == 'S' })
	fmt.Printf("found=%v at (%d, %d), size %dx%d\n", ok, x, y, g.Width(), g.Height())
	// Output: found=true at (2, 1), size 5x3
}

// ExampleUniformGrid demonstrates a fixed-size grid with in-place mutation,
// as used for stamping obstacles into a scanned cave.
func ExampleUniformGrid() {
	g := grid.NewUniformGrid[byte](4, 2)
	g.Fill('.')
	g.Set(1, 0, '#')
	g.Set(2, 1, '#')

	for y := 0; y < g.Height(); y++ {
		row, _ := g.Row(y)
		fmt.Println(string(row))
	}
	// Output:
	// .#..
	// ..#.
}
