// Package render prints solved mazes.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/pdrpinto/mazesolver"
)

// Glyphs for a cell, indexed by its passage set. Each is two columns wide.
var (
	light = [16]string{
		"  ", "╵ ", "╶─", "└─",
		"╷ ", "│ ", "┌─", "├─",
		"╴ ", "┘ ", "──", "┴─",
		"┐ ", "┤ ", "┬─", "┼─",
	}
	heavy = [16]string{
		"  ", "╹ ", "╺━", "┗━",
		"╻ ", "┃ ", "┏━", "┣━",
		"╸ ", "┛ ", "━━", "┻━",
		"┓ ", "┫ ", "┳━", "╋━",
	}
)

// class is a cell's display class.
type class int

const (
	unvisited class = iota
	onPath
	closed
	open
)

var colors = [4]string{"\033[0m", "\033[32m", "\033[31m", "\033[34m"}

// Columns returns the terminal width needed to draw grid.
func Columns(grid *mazesolver.Grid) int { return 2 * grid.Width() }

// Solution writes path one "(x, y)" per line.
func Solution(w io.Writer, path []mazesolver.Point) error {
	out := bufio.NewWriter(w)
	for _, p := range path {
		fmt.Fprintln(out, p)
	}
	return out.Flush()
}

// Maze draws the bare maze with light glyphs.
func Maze(w io.Writer, grid *mazesolver.Grid) error {
	return Graphic(w, grid, roaring.New(), false)
}

// Graphic draws grid with searched cells in heavy glyphs. With color set,
// path cells are green, closed cells red and open cells blue.
func Graphic(w io.Writer, grid *mazesolver.Grid, path *roaring.Bitmap, color bool) error {
	out := bufio.NewWriter(w)
	current := unvisited
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := mazesolver.Point{X: x, Y: y}
			c := classify(grid, path, p)
			if color && c != current {
				out.WriteString(colors[c])
				current = c
			}
			glyphs := &heavy
			if c == unvisited {
				glyphs = &light
			}
			out.WriteString(glyphs[grid.Passages(p)&0x0f])
		}
		out.WriteByte('\n')
	}
	if color && current != unvisited {
		out.WriteString(colors[unvisited])
	}
	return out.Flush()
}

func classify(grid *mazesolver.Grid, path *roaring.Bitmap, p mazesolver.Point) class {
	if grid.OnPath(path, p) {
		return onPath
	}
	switch grid.Node(p).Status {
	case mazesolver.Closed:
		return closed
	case mazesolver.Open:
		return open
	}
	return unvisited
}

// Summary writes the classification counts.
func Summary(w io.Writer, res mazesolver.Result) error {
	_, err := fmt.Fprintf(w,
		"Heap swaps     : %d\n"+
			"Path      nodes: %d\n"+
			"Closed    nodes: %d\n"+
			"Open      nodes: %d\n"+
			"Unvisited nodes: %d\n"+
			"Total     nodes: %d\n",
		res.HeapSwaps, res.Stats.Path, res.Stats.Closed, res.Stats.Open, res.Stats.Unvisited, res.Stats.Total())
	return err
}

// Step writes one trace line for a search step.
func Step(w io.Writer, snap mazesolver.StepSnapshot) error {
	_, err := fmt.Fprintf(w, "step %d: closed %v, %d open\n", snap.StepIndex, snap.Current, snap.OpenNodes)
	return err
}
