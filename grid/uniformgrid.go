package grid

import "fmt"

// UniformGrid is a 2D grid allocated up-front to fixed Width×Height, every
// cell starting at the zero value of T, with random-access mutation of
// individual cells. The zero value is not usable; construct with
// NewUniformGrid.
type UniformGrid[T any] struct {
	flat[T]
}

// NewUniformGrid allocates a width×height grid with every cell set to the
// zero value of T. Panics with ErrBadDimensions context when either
// dimension is not positive.
func NewUniformGrid[T any](width, height int) *UniformGrid[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("%v: width=%d, height=%d", ErrBadDimensions, width, height))
	}

	return &UniformGrid[T]{flat: flat[T]{
		width: width,
		cells: make([]T, width*height),
	}}
}

// Set overwrites the cell at (x, y). The caller guarantees (x, y) lies
// inside the allocated area; an out-of-range write panics with
// ErrOutOfRange context rather than growing or corrupting the grid. O(1).
func (g *UniformGrid[T]) Set(x, y int, value T) {
	p, ok := g.CellPtr(x, y)
	if !ok {
		panic(fmt.Sprintf("%v: (%d, %d) outside %dx%d", ErrOutOfRange, x, y, g.width, g.Height()))
	}
	*p = value
}

// Fill overwrites every cell with value. O(W×H).
func (g *UniformGrid[T]) Fill(value T) {
	for i := range g.cells {
		g.cells[i] = value
	}
}
