package mazesolver_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazesolver"
	"github.com/pdrpinto/mazesolver/internal/mazegen"
)

// openGrid returns a grid with every interior passage open.
func openGrid(t *testing.T, width, height int) *mazesolver.Grid {
	t.Helper()
	grid, err := mazesolver.NewGrid(width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width-1 {
				require.NoError(t, grid.SetPassage(x, y, mazesolver.East))
			}
			if y < height-1 {
				require.NoError(t, grid.SetPassage(x, y, mazesolver.South))
			}
		}
	}
	return grid
}

func randomGrid(t *testing.T, alg mazegen.Algorithm, width, height, odds int, seed uint64) *mazesolver.Grid {
	t.Helper()
	grid, err := mazesolver.NewGrid(width, height)
	require.NoError(t, err)
	require.NoError(t, mazegen.Generate(grid, alg, odds, rand.New(rand.NewPCG(seed, 0x9e3779b9))))
	return grid
}

// bfsDistances returns the edge distance from origin to every cell, -1 when
// unreachable.
func bfsDistances(grid *mazesolver.Grid, origin mazesolver.Point) []int {
	dist := make([]int, grid.Cells())
	for i := range dist {
		dist[i] = -1
	}
	idx := func(p mazesolver.Point) int { return p.Y*grid.Width() + p.X }

	dist[idx(origin)] = 0
	queue := []mazesolver.Point{origin}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for next := range grid.Neighbors(p.X, p.Y) {
			if dist[idx(next)] >= 0 {
				continue
			}
			dist[idx(next)] = dist[idx(p)] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// requireConnectedPath checks that consecutive cells share an open passage.
func requireConnectedPath(t *testing.T, grid *mazesolver.Grid, path []mazesolver.Point, start, end mazesolver.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, end, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		connected := false
		for next := range grid.Neighbors(path[i-1].X, path[i-1].Y) {
			if next == path[i] {
				connected = true
				break
			}
		}
		require.True(t, connected, "no passage between %v and %v", path[i-1], path[i])
	}
}
