package mazesolver

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Stats classifies every cell of a searched grid into exactly one class.
type Stats struct {
	Path      int
	Closed    int
	Open      int
	Unvisited int
}

// Total is the number of classified cells.
func (s Stats) Total() int { return s.Path + s.Closed + s.Open + s.Unvisited }

// ReconstructPath follows parent links from start until end is reached.
// It fails with ErrInvalidState when the chain dead-ends, leaves the grid
// or loops, none of which a finished search can produce.
func ReconstructPath(grid *Grid, start, end Point) ([]Point, error) {
	if err := checkEndpoints(grid, start, end); err != nil {
		return nil, err
	}
	if grid.Node(start).Status != Closed {
		return nil, fmt.Errorf("start %v was never reached: %w", start, ErrInvalidState)
	}

	path := make([]Point, 0, grid.Node(start).GCost+1)
	current := start
	for current != end {
		if len(path) >= grid.Cells() {
			return nil, fmt.Errorf("parent chain from %v loops: %w", start, ErrInvalidState)
		}
		path = append(path, current)

		parent := grid.Node(current).Parent
		if !parent.single() || grid.Passages(current)&parent == 0 {
			return nil, fmt.Errorf("dead end at %v (parent %v): %w", current, parent, ErrInvalidState)
		}
		next := current.Step(parent)
		if !grid.InBounds(next) {
			return nil, fmt.Errorf("parent of %v leaves the grid: %w", current, ErrInvalidState)
		}
		current = next
	}
	return append(path, end), nil
}

// NewPathSet returns the cell indices of path.
func NewPathSet(grid *Grid, path []Point) *roaring.Bitmap {
	set := roaring.New()
	for _, p := range path {
		if grid.InBounds(p) {
			set.Add(uint32(grid.index(p)))
		}
	}
	return set
}

// OnPath reports whether p is in a set built by NewPathSet.
func (g *Grid) OnPath(set *roaring.Bitmap, p Point) bool {
	return g.InBounds(p) && set.Contains(uint32(g.index(p)))
}

// Classify counts cells on path, then closed, open and unvisited cells off it.
func Classify(grid *Grid, path []Point) Stats {
	onPath := NewPathSet(grid, path)
	stats := Stats{Path: int(onPath.GetCardinality())}
	for i := range grid.nodes {
		if onPath.Contains(uint32(i)) {
			continue
		}
		switch grid.nodes[i].Status {
		case Closed:
			stats.Closed++
		case Open:
			stats.Open++
		default:
			stats.Unvisited++
		}
	}
	return stats
}
