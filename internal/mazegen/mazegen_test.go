package mazegen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazesolver"
)

func newGrid(t *testing.T, width, height int) *mazesolver.Grid {
	t.Helper()
	grid, err := mazesolver.NewGrid(width, height)
	require.NoError(t, err)
	return grid
}

// edges counts open passages, each once.
func edges(grid *mazesolver.Grid) int {
	n := 0
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			open := grid.Passages(mazesolver.Point{X: x, Y: y})
			if open&mazesolver.East != 0 {
				n++
			}
			if open&mazesolver.South != 0 {
				n++
			}
		}
	}
	return n
}

func reachable(grid *mazesolver.Grid) int {
	seen := map[mazesolver.Point]bool{{}: true}
	stack := []mazesolver.Point{{}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range grid.Neighbors(p.X, p.Y) {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(seen)
}

func TestBacktrackCarvesSpanningTree(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		grid := newGrid(t, 9+int(seed), 6)
		require.NoError(t, Backtrack(grid, 0, rand.New(rand.NewPCG(seed, seed))))

		assert.Equal(t, grid.Cells()-1, edges(grid))
		assert.Equal(t, grid.Cells(), reachable(grid))
	}
}

func TestBacktrackIsDeterministic(t *testing.T) {
	a, b := newGrid(t, 12, 12), newGrid(t, 12, 12)
	require.NoError(t, Generate(a, DepthFirst, 16, rand.New(rand.NewPCG(4, 4))))
	require.NoError(t, Generate(b, DepthFirst, 16, rand.New(rand.NewPCG(4, 4))))

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			p := mazesolver.Point{X: x, Y: y}
			assert.Equal(t, a.Passages(p), b.Passages(p))
		}
	}
	assert.GreaterOrEqual(t, edges(a), a.Cells()-1)
}

func TestRandomConnectionsOdds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	closed := newGrid(t, 5, 4)
	require.NoError(t, RandomConnections(closed, 0, rng))
	assert.Zero(t, edges(closed))

	open := newGrid(t, 5, 4)
	require.NoError(t, RandomConnections(open, 256, rng))
	assert.Equal(t, 4*4+5*3, edges(open))
}

func TestGenerateUnknownAlgorithm(t *testing.T) {
	err := Generate(newGrid(t, 2, 2), Algorithm("prim"), 0, rand.New(rand.NewPCG(1, 1)))
	require.Error(t, err)
	assert.Equal(t, 128, DefaultOdds(Random))
	assert.Equal(t, 0, DefaultOdds(DepthFirst))
}
