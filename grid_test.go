package mazesolver

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	_, err := NewGrid(0, 3)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewGrid(3, -1)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewGrid(MaxCells, 2)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestSetPassageIsBidirectional(t *testing.T) {
	grid := newTestGrid(t, 3, 2)

	require.NoError(t, grid.SetPassage(1, 0, South))
	assert.Equal(t, South, grid.Passages(Point{X: 1, Y: 0}))
	assert.Equal(t, North, grid.Passages(Point{X: 1, Y: 1}))

	require.NoError(t, grid.SetPassage(1, 1, West))
	assert.Equal(t, North|West, grid.Passages(Point{X: 1, Y: 1}))
	assert.Equal(t, East, grid.Passages(Point{X: 0, Y: 1}))
}

func TestSetPassageOutOfBounds(t *testing.T) {
	grid := newTestGrid(t, 2, 2)

	require.ErrorIs(t, grid.SetPassage(0, 0, North), ErrOutOfBounds)
	require.ErrorIs(t, grid.SetPassage(1, 0, East), ErrOutOfBounds)
	require.ErrorIs(t, grid.SetPassage(0, 1, South), ErrOutOfBounds)
	require.ErrorIs(t, grid.SetPassage(0, 0, West), ErrOutOfBounds)
	require.ErrorIs(t, grid.SetPassage(5, 5, East), ErrOutOfBounds)
	require.ErrorIs(t, grid.SetPassage(0, 0, East|South), ErrInvalidState)

	for i := 0; i < grid.Cells(); i++ {
		assert.Zero(t, grid.nodes[i].Passages)
	}
}

func TestNeighborsIsRestartable(t *testing.T) {
	grid := newTestGrid(t, 3, 3)
	require.NoError(t, grid.SetPassage(1, 1, North))
	require.NoError(t, grid.SetPassage(1, 1, West))
	require.NoError(t, grid.SetPassage(1, 1, South))

	want := []Point{{1, 0}, {1, 2}, {0, 1}}
	seq := grid.Neighbors(1, 1)
	assert.Equal(t, want, slices.Collect(seq))
	assert.Equal(t, want, slices.Collect(seq))

	for p := range seq {
		assert.Equal(t, Point{X: 1, Y: 0}, p)
		break
	}

	assert.Empty(t, slices.Collect(grid.Neighbors(2, 2)))
	assert.Empty(t, slices.Collect(grid.Neighbors(-1, 0)))
}

func TestGridReset(t *testing.T) {
	grid := newTestGrid(t, 2, 1)
	require.NoError(t, grid.SetPassage(0, 0, East))

	_, err := Solve(grid, Point{X: 0}, Point{X: 1})
	require.NoError(t, err)
	assert.Equal(t, Closed, grid.Node(Point{}).Status)

	grid.Reset()
	for i := range grid.nodes {
		n := grid.nodes[i]
		assert.Equal(t, Unvisited, n.Status)
		assert.Equal(t, notQueued, n.HeapIndex)
		assert.Zero(t, n.Parent)
	}
	assert.Equal(t, East, grid.Passages(Point{}))
}
