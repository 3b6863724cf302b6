package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenakit/grid"
)

func TestNewUniformGrid_ZeroFilled(t *testing.T) {
	g := grid.NewUniformGrid[int](4, 3)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())

	g.Enumerate(func(x, y int) {
		v, ok := g.Cell(x, y)
		require.True(t, ok)
		assert.Equal(t, 0, v)
	})
}

func TestNewUniformGrid_BadDimensionsPanic(t *testing.T) {
	assert.Panics(t, func() { grid.NewUniformGrid[int](0, 5) })
	assert.Panics(t, func() { grid.NewUniformGrid[int](5, 0) })
	assert.Panics(t, func() { grid.NewUniformGrid[int](-1, -1) })
}

func TestUniformGrid_SetAndCell(t *testing.T) {
	g := grid.NewUniformGrid[rune](3, 3)
	g.Set(1, 2, '#')

	v, ok := g.Cell(1, 2)
	require.True(t, ok)
	assert.Equal(t, '#', v)

	// Neighbors stay at the zero value.
	v, ok = g.Cell(1, 1)
	require.True(t, ok)
	assert.Equal(t, rune(0), v)
}

func TestUniformGrid_SetOutOfRangePanics(t *testing.T) {
	g := grid.NewUniformGrid[int](3, 3)
	assert.Panics(t, func() { g.Set(3, 0, 1) })
	assert.Panics(t, func() { g.Set(0, 3, 1) })
	assert.Panics(t, func() { g.Set(-1, 0, 1) })
}

func TestUniformGrid_CellOutOfRangeIsAbsent(t *testing.T) {
	g := grid.NewUniformGrid[int](3, 3)
	_, ok := g.Cell(3, 0)
	assert.False(t, ok)
	_, ok = g.Cell(0, 3)
	assert.False(t, ok)
}

func TestUniformGrid_Fill(t *testing.T) {
	g := grid.NewUniformGrid[byte](2, 2)
	g.Fill('.')

	g.Enumerate(func(x, y int) {
		v, ok := g.Cell(x, y)
		require.True(t, ok)
		assert.Equal(t, byte('.'), v)
	})
}

func TestUniformGrid_FindAll(t *testing.T) {
	g := grid.NewUniformGrid[int](3, 2)
	g.Set(2, 0, 9)
	g.Set(0, 1, 9)

	got := g.FindAll(func(v int) bool { return v == 9 })
	assert.Equal(t, []grid.Coord{{X: 2, Y: 0}, {X: 0, Y: 1}}, got)
}

func TestUniformGrid_RowIsView(t *testing.T) {
	g := grid.NewUniformGrid[int](3, 2)
	row, ok := g.Row(0)
	require.True(t, ok)
	row[1] = 42

	v, ok := g.Cell(1, 0)
	require.True(t, ok)
	assert.Equal(t, 42, v, "Row returns a view of backing storage")
}
