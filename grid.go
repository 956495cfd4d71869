package mazesolver

import (
	"fmt"
	"iter"
)

// MaxCells bounds width*height, keeping the node array near 512 MiB.
const MaxCells = 1 << 24

// notQueued marks a node without a slot in the open set.
const notQueued = -1

// Status is the search state of a node.
type Status uint8

const (
	Unvisited Status = iota
	Open
	Closed
)

func (s Status) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Node is one grid cell.
type Node struct {
	Passages  Direction // open sides, set at load time
	Parent    Direction // side leading back towards the end cell
	Status    Status
	GCost     int // edges from the end cell along the best known path
	HCost     int // Manhattan distance to the start cell
	HeapIndex int // slot in the open set, or notQueued
}

// Priority is the open-set key of the node.
func (n *Node) Priority() int { return n.GCost + n.HCost }

// Grid is a dense width x height array of nodes in row-major order.
type Grid struct {
	width  int
	height int
	nodes  []Node
}

// NewGrid allocates a grid with every passage closed.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrInvalidDimensions, width, height)
	}
	if int64(width)*int64(height) > MaxCells {
		return nil, fmt.Errorf("%w: %d x %d cells exceeds %d", ErrOutOfMemory, width, height, MaxCells)
	}
	g := &Grid{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
	}
	g.Reset()
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Cells returns width*height.
func (g *Grid) Cells() int { return len(g.nodes) }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(p Point) int { return p.Y*g.width + p.X }

func (g *Grid) point(i int) Point { return Point{X: i % g.width, Y: i / g.width} }

// Node returns the node at p. The caller must check bounds.
func (g *Grid) Node(p Point) *Node { return &g.nodes[g.index(p)] }

// Passages returns the open sides of the cell at p.
func (g *Grid) Passages(p Point) Direction { return g.nodes[g.index(p)].Passages }

// SetPassage opens the corridor between (x, y) and its neighbour in
// direction d, on both cells.
func (g *Grid) SetPassage(x, y int, d Direction) error {
	from := Point{X: x, Y: y}
	if !d.single() {
		return fmt.Errorf("set passage %v at %v: %w", d, from, ErrInvalidState)
	}
	to := from.Step(d)
	if !g.InBounds(from) || !g.InBounds(to) {
		return fmt.Errorf("set passage %v at %v: %w", d, from, ErrOutOfBounds)
	}
	g.nodes[g.index(from)].Passages |= d
	g.nodes[g.index(to)].Passages |= d.Opposite()
	return nil
}

// Neighbors yields the cells reachable from (x, y) through an open passage.
// The sequence can be ranged over any number of times.
func (g *Grid) Neighbors(x, y int) iter.Seq[Point] {
	from := Point{X: x, Y: y}
	return func(yield func(Point) bool) {
		if !g.InBounds(from) {
			return
		}
		open := g.nodes[g.index(from)].Passages
		for _, d := range AllDirections {
			if !open.Has(d) {
				continue
			}
			to := from.Step(d)
			if !g.InBounds(to) {
				continue
			}
			if !yield(to) {
				return
			}
		}
	}
}

// Reset clears all search state, keeping the passages.
func (g *Grid) Reset() {
	for i := range g.nodes {
		n := &g.nodes[i]
		n.Parent = 0
		n.Status = Unvisited
		n.GCost = 0
		n.HCost = 0
		n.HeapIndex = notQueued
	}
}
