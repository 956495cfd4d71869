package mazesolver

import (
	"errors"
	"fmt"

	"github.com/pdrpinto/mazesolver/internal"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Point // node closed by this step
	Done      bool
	Found     bool
	StepIndex int
	OpenNodes int
}

// Session owns one in-flight search over a grid. The search is seeded with
// the end cell and runs towards the start cell.
type Session struct {
	grid       *Grid
	start      Point
	end        Point
	open       *OpenSet
	logger     *Logger
	exhaustive bool

	stepCount int
	done      bool
	found     bool
	err       error
}

// NewSession clears the search state of grid and seeds the open set with end.
func NewSession(grid *Grid, start, end Point, options ...Option) (*Session, error) {
	if err := checkEndpoints(grid, start, end); err != nil {
		return nil, err
	}
	opts := newOptions(grid, options)
	grid.Reset()

	s := &Session{
		grid:       grid,
		start:      start,
		end:        end,
		open:       NewOpenSet(grid, options...),
		logger:     opts.Logger,
		exhaustive: opts.Exhaustive,
	}

	node := grid.Node(end)
	node.Status = Open
	node.GCost = 0
	node.HCost = s.heuristic(end)
	if err := s.open.Push(end.X, end.Y, node.Priority()); err != nil {
		return nil, err
	}
	s.logger.Debug("solving", "start", start, "end", end)
	return s, nil
}

// Queue exposes the open set.
func (s *Session) Queue() *OpenSet { return s.open }

// Done reports whether the search has terminated.
func (s *Session) Done() bool { return s.done }

// Found reports whether the start cell has been closed.
func (s *Session) Found() bool { return s.found }

// Step closes one node and relaxes its neighbours.
func (s *Session) Step() (StepSnapshot, error) {
	if s.err != nil {
		return s.snapshot(Point{}), s.err
	}
	if s.done {
		return s.snapshot(Point{}), nil
	}

	current, _, err := s.open.PopMin()
	if errors.Is(err, ErrEmptyQueue) {
		s.done = true
		return s.snapshot(Point{}), nil
	}
	if err != nil {
		return s.fail(err)
	}
	s.stepCount++

	node := s.grid.Node(current)
	node.Status = Closed

	if current == s.start {
		s.found = true
		if !s.exhaustive {
			s.done = true
			return s.snapshot(current), nil
		}
	}

	tentative := node.GCost + 1
	for _, d := range AllDirections {
		if !node.Passages.Has(d) {
			continue
		}
		next := current.Step(d)
		if !s.grid.InBounds(next) {
			return s.fail(fmt.Errorf("passage %v from %v: %w", d, current, ErrOutOfBounds))
		}
		neighbor := s.grid.Node(next)
		if neighbor.Status == Closed {
			continue
		}

		switch {
		case neighbor.Status == Unvisited:
			neighbor.Status = Open
			s.relax(neighbor, next, d, tentative)
			if err := s.open.Push(next.X, next.Y, neighbor.Priority()); err != nil {
				return s.fail(err)
			}
		case tentative < neighbor.GCost:
			s.relax(neighbor, next, d, tentative)
			if err := s.open.DecreasePriority(next, neighbor.Priority()); err != nil {
				return s.fail(err)
			}
		}
	}

	return s.snapshot(current), nil
}

// Run steps until the search terminates and assembles the Result.
func (s *Session) Run() (Result, error) {
	for !s.done {
		if _, err := s.Step(); err != nil {
			return Result{}, err
		}
	}

	result := Result{
		Found:       s.found,
		Expanded:    s.stepCount,
		HeapSwaps:   s.open.Swaps(),
		HeapGrowths: s.open.Growths(),
	}
	if s.found {
		path, err := ReconstructPath(s.grid, s.start, s.end)
		if err != nil {
			return Result{}, err
		}
		result.Path = path
		result.Length = s.grid.Node(s.start).GCost
	}
	result.Stats = Classify(s.grid, result.Path)
	return result, nil
}

// heuristic is the Manhattan distance to the start cell, the target of the
// reversed search.
func (s *Session) heuristic(p Point) int {
	return internal.Manhattan(p.X, p.Y, s.start.X, s.start.Y)
}

// relax records that next is best reached from its neighbour in direction
// d.Opposite() at the given cost.
func (s *Session) relax(neighbor *Node, next Point, d Direction, cost int) {
	neighbor.Parent = d.Opposite()
	neighbor.GCost = cost
	neighbor.HCost = s.heuristic(next)
}

func (s *Session) fail(err error) (StepSnapshot, error) {
	s.err = err
	s.done = true
	return s.snapshot(Point{}), err
}

func (s *Session) snapshot(current Point) StepSnapshot {
	return StepSnapshot{
		Current:   current,
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.stepCount,
		OpenNodes: s.open.Len(),
	}
}
