package mazesolver

import (
	"fmt"
	"strings"
)

// Direction is a set of the four orthogonal sides of a cell. A single bit
// names one side; several bits describe the open passages of a node.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

// AllDirections lists the sides in expansion order.
var AllDirections = [4]Direction{North, East, South, West}

// Opposite returns the side facing d. It is defined for sets as well:
// every bit is mirrored.
func (d Direction) Opposite() Direction {
	return ((d << 2) | (d >> 2)) & 0x0f
}

// Has reports whether every side in o is present in d.
func (d Direction) Has(o Direction) bool { return d&o == o && o != 0 }

func (d Direction) single() bool { return d != 0 && d&^0x0f == 0 && d&(d-1) == 0 }

// Delta returns the coordinate step for a single direction.
// y grows southwards, matching the row order of the maze text format.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	if d == 0 {
		return "none"
	}
	names := [4]string{"north", "east", "south", "west"}
	parts := make([]string, 0, 4)
	for i, side := range AllDirections {
		if d&side != 0 {
			parts = append(parts, names[i])
		}
	}
	return strings.Join(parts, "|")
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Step returns the neighbouring coordinate in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }
