package grid

import "fmt"

// RowGrid is a 2D grid built incrementally from rows of a fixed width.
// Height grows as rows are pushed; cells are stored row-major in a single
// flat slice. The zero value is not usable; construct with NewRowGrid.
type RowGrid[T any] struct {
	flat[T]
}

// NewRowGrid returns an empty grid that will accept rows of exactly width
// cells. Panics with ErrBadDimensions context when width is not positive —
// a zero-width grid cannot address any cell.
func NewRowGrid[T any](width int) *RowGrid[T] {
	if width <= 0 {
		panic(fmt.Sprintf("%v: width=%d", ErrBadDimensions, width))
	}

	return &RowGrid[T]{flat: flat[T]{width: width}}
}

// PushRow appends one row to the bottom of the grid. Panics with
// ErrRowWidth context when len(row) differs from the grid width: a
// malformed row signals a bug in the input-parsing caller, and absorbing
// it would corrupt row-major addressing for every later cell. O(W).
func (g *RowGrid[T]) PushRow(row []T) {
	if len(row) != g.width {
		panic(fmt.Sprintf("%v: got %d, want %d", ErrRowWidth, len(row), g.width))
	}
	g.cells = append(g.cells, row...)
}
