// Package mazegen carves passages into an empty grid.
package mazegen

import (
	"fmt"
	"math/rand/v2"

	"github.com/pdrpinto/mazesolver"
)

// Algorithm names a generator.
type Algorithm string

const (
	Random     Algorithm = "rand"
	DepthFirst Algorithm = "dfs"
)

// DefaultOdds returns the extra-connection odds (out of 256) used when the
// caller gives none.
func DefaultOdds(alg Algorithm) int {
	if alg == Random {
		return 128
	}
	return 0
}

// Generate fills grid using alg. odds is out of 256.
func Generate(grid *mazesolver.Grid, alg Algorithm, odds int, rng *rand.Rand) error {
	switch alg {
	case Random:
		return RandomConnections(grid, odds, rng)
	case DepthFirst:
		return Backtrack(grid, odds, rng)
	}
	return fmt.Errorf("unknown algorithm %q", alg)
}

// RandomConnections opens each east and south passage independently with
// probability odds/256.
func RandomConnections(grid *mazesolver.Grid, odds int, rng *rand.Rand) error {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if rng.IntN(256) < odds && y < grid.Height()-1 {
				if err := grid.SetPassage(x, y, mazesolver.South); err != nil {
					return err
				}
			}
			if rng.IntN(256) < odds && x < grid.Width()-1 {
				if err := grid.SetPassage(x, y, mazesolver.East); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Backtrack carves a spanning tree with an iterative depth-first walk from
// the top-left cell, then adds random extra connections when odds > 0.
func Backtrack(grid *mazesolver.Grid, odds int, rng *rand.Rand) error {
	stack := make([]mazesolver.Point, 0, grid.Cells())
	stack = append(stack, mazesolver.Point{})
	carved := func(p mazesolver.Point) bool {
		return grid.Passages(p) != 0 || p == (mazesolver.Point{})
	}

	var options [4]mazesolver.Direction
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		n := 0
		for _, d := range mazesolver.AllDirections {
			next := top.Step(d)
			if grid.InBounds(next) && !carved(next) {
				options[n] = d
				n++
			}
		}
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := options[rng.IntN(n)]
		if err := grid.SetPassage(top.X, top.Y, d); err != nil {
			return err
		}
		stack = append(stack, top.Step(d))
	}

	if odds > 0 {
		return RandomConnections(grid, odds, rng)
	}
	return nil
}
