// Package grid defines shared types and sentinel errors for the
// flat-vector-backed 2D grids.
package grid

import "errors"

// Sentinel errors for grid usage violations. They are used as panic
// payload context: a mismatched row width or an out-of-range write means
// the calling parser is broken, and the grid refuses to absorb the damage
// silently.
var (
	// ErrBadDimensions indicates a non-positive width or height at construction.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrRowWidth indicates a pushed row whose length differs from the grid width.
	ErrRowWidth = errors.New("grid: row length does not match grid width")
	// ErrOutOfRange indicates a write outside the allocated grid area.
	ErrOutOfRange = errors.New("grid: cell coordinates out of range")
)

// Coord is a single (X, Y) grid coordinate, as returned by FindAll.
type Coord struct {
	X, Y int
}

// flat is the shared storage and read surface embedded by RowGrid and
// UniformGrid: an ordered flat cell slice plus a fixed width, addressed
// row-major as y*width + x.
type flat[T any] struct {
	width int
	cells []T
}

// Width returns the fixed number of columns.
func (g *flat[T]) Width() int { return g.width }

// Height returns the current number of complete rows.
func (g *flat[T]) Height() int { return len(g.cells) / g.width }

// Cell returns the value at (x, y), or (zero, false) when x is outside the
// width or the linear index exceeds the stored length. O(1).
func (g *flat[T]) Cell(x, y int) (T, bool) {
	if p, ok := g.CellPtr(x, y); ok {
		return *p, true
	}
	var zero T

	return zero, false
}

// CellPtr returns a pointer to the value at (x, y) for in-place mutation,
// or (nil, false) when out of range. O(1).
func (g *flat[T]) CellPtr(x, y int) (*T, bool) {
	if x < 0 || x >= g.width || y < 0 {
		return nil, false
	}
	idx := y*g.width + x
	if idx >= len(g.cells) {
		return nil, false
	}

	return &g.cells[idx], true
}

// Row returns the y-th row as a view of the backing storage, or
// (nil, false) when y is out of range. Mutating the returned slice mutates
// the grid. O(1).
func (g *flat[T]) Row(y int) ([]T, bool) {
	if y < 0 || y >= g.Height() {
		return nil, false
	}
	start := y * g.width

	return g.cells[start : start+g.width], true
}

// Column returns a copy of the x-th column, or (nil, false) when x is out
// of range. Storage is row-major, so a column is necessarily a copy, not a
// view. O(H).
func (g *flat[T]) Column(x int) ([]T, bool) {
	if x < 0 || x >= g.width {
		return nil, false
	}
	h := g.Height()
	col := make([]T, h)
	for y := 0; y < h; y++ {
		col[y] = g.cells[y*g.width+x]
	}

	return col, true
}

// Find returns the coordinates of the first cell satisfying pred, scanning
// in row-major order (y outer, x inner). The scan order is contractual:
// callers depend on deterministic first-match semantics. O(W×H).
func (g *flat[T]) Find(pred func(T) bool) (x, y int, ok bool) {
	for y = 0; y < g.Height(); y++ {
		for x = 0; x < g.width; x++ {
			if pred(g.cells[y*g.width+x]) {
				return x, y, true
			}
		}
	}

	return 0, 0, false
}

// FindAll returns the coordinates of every cell satisfying pred, in
// row-major order. O(W×H).
func (g *flat[T]) FindAll(pred func(T) bool) []Coord {
	var found []Coord
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.width; x++ {
			if pred(g.cells[y*g.width+x]) {
				found = append(found, Coord{X: x, Y: y})
			}
		}
	}

	return found
}

// Enumerate calls fn for every coordinate in row-major order. It is a
// side-effecting visitor; fn typically captures the grid and reads cells
// as it goes. O(W×H).
func (g *flat[T]) Enumerate(fn func(x, y int)) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y)
		}
	}
}
