package mazesolver

import "fmt"

// DefaultHeapIncrement is the number of slots the open set grows by.
const DefaultHeapIncrement = 4096

// OpenSet is a binary min-heap of grid coordinates keyed on priority.
//
// Entries live in three parallel arrays. The slot of every queued node is
// mirrored in Node.HeapIndex, so a node's priority can be lowered without
// searching the heap. Storage grows by a fixed increment and never shrinks;
// growth only extends the arrays, so recorded slots stay valid.
type OpenSet struct {
	grid  *Grid
	xs    []int
	ys    []int
	prios []int
	n     int

	increment int
	limit     int
	swaps     int
	growths   int
	logger    *Logger
}

// NewOpenSet creates an empty open set over grid. Only WithHeapIncrement,
// WithQueueLimit and WithLogger apply.
func NewOpenSet(grid *Grid, options ...Option) *OpenSet {
	opts := newOptions(grid, options)
	capacity := min(opts.HeapIncrement, opts.QueueLimit)
	return &OpenSet{
		grid:      grid,
		xs:        make([]int, capacity),
		ys:        make([]int, capacity),
		prios:     make([]int, capacity),
		increment: opts.HeapIncrement,
		limit:     opts.QueueLimit,
		logger:    opts.Logger,
	}
}

// Len returns the number of queued entries.
func (s *OpenSet) Len() int { return s.n }

// Cap returns the allocated number of slots.
func (s *OpenSet) Cap() int { return len(s.prios) }

// Swaps returns the number of entry swaps performed by sifting.
func (s *OpenSet) Swaps() int { return s.swaps }

// Growths returns how many times the storage was extended.
func (s *OpenSet) Growths() int { return s.growths }

// Contains reports whether p currently has a slot.
func (s *OpenSet) Contains(p Point) bool {
	if !s.grid.InBounds(p) {
		return false
	}
	i := s.grid.Node(p).HeapIndex
	return i >= 0 && i < s.n && s.xs[i] == p.X && s.ys[i] == p.Y
}

// Push inserts (x, y) with the given priority.
func (s *OpenSet) Push(x, y, priority int) error {
	p := Point{X: x, Y: y}
	if !s.grid.InBounds(p) {
		return fmt.Errorf("push %v: %w", p, ErrOutOfBounds)
	}
	node := s.grid.Node(p)
	if node.HeapIndex != notQueued {
		return fmt.Errorf("push %v: already queued at slot %d: %w", p, node.HeapIndex, ErrInvalidState)
	}
	if s.n == len(s.prios) {
		if err := s.grow(); err != nil {
			return err
		}
	}
	i := s.n
	s.xs[i], s.ys[i], s.prios[i] = x, y, priority
	node.HeapIndex = i
	s.n++
	s.up(i)
	return nil
}

// PopMin removes and returns the entry with the smallest priority.
// Ties go to whichever entry sits nearer the root.
func (s *OpenSet) PopMin() (Point, int, error) {
	if s.n == 0 {
		return Point{}, 0, ErrEmptyQueue
	}
	p := Point{X: s.xs[0], Y: s.ys[0]}
	priority := s.prios[0]
	s.grid.Node(p).HeapIndex = notQueued

	s.n--
	if s.n > 0 {
		last := s.n
		s.xs[0], s.ys[0], s.prios[0] = s.xs[last], s.ys[last], s.prios[last]
		s.grid.Node(Point{X: s.xs[0], Y: s.ys[0]}).HeapIndex = 0
		s.down(0)
	}
	return p, priority, nil
}

// DecreasePriority lowers the priority of a queued node and restores heap
// order by sifting it towards the root.
func (s *OpenSet) DecreasePriority(p Point, priority int) error {
	if !s.Contains(p) {
		return fmt.Errorf("decrease priority of %v: not queued: %w", p, ErrInvalidState)
	}
	i := s.grid.Node(p).HeapIndex
	if priority > s.prios[i] {
		return fmt.Errorf("decrease priority of %v: %d exceeds %d: %w", p, priority, s.prios[i], ErrInvalidState)
	}
	s.prios[i] = priority
	s.up(i)
	return nil
}

// Check verifies the heap order and the node back-pointers. It is a
// diagnostic and is never called by the search.
func (s *OpenSet) Check() error {
	for i := 0; i < s.n; i++ {
		p := Point{X: s.xs[i], Y: s.ys[i]}
		if got := s.grid.Node(p).HeapIndex; got != i {
			return fmt.Errorf("slot %d holds %v whose heap index is %d: %w", i, p, got, ErrInvalidState)
		}
		if i == 0 {
			continue
		}
		if parent := (i - 1) / 2; s.prios[i] < s.prios[parent] {
			return fmt.Errorf("slot %d priority %d below parent slot %d priority %d: %w",
				i, s.prios[i], parent, s.prios[parent], ErrInvalidState)
		}
	}
	return nil
}

func (s *OpenSet) grow() error {
	capacity := len(s.prios)
	if capacity >= s.limit {
		return fmt.Errorf("open set full at %d entries: %w", capacity, ErrOutOfMemory)
	}
	capacity = min(capacity+s.increment, s.limit)
	s.logger.LogGrowth(capacity, s.swaps)

	xs := make([]int, capacity)
	ys := make([]int, capacity)
	prios := make([]int, capacity)
	copy(xs, s.xs[:s.n])
	copy(ys, s.ys[:s.n])
	copy(prios, s.prios[:s.n])
	s.xs, s.ys, s.prios = xs, ys, prios
	s.growths++
	return nil
}

func (s *OpenSet) swap(i, j int) {
	s.xs[i], s.xs[j] = s.xs[j], s.xs[i]
	s.ys[i], s.ys[j] = s.ys[j], s.ys[i]
	s.prios[i], s.prios[j] = s.prios[j], s.prios[i]
	s.grid.Node(Point{X: s.xs[i], Y: s.ys[i]}).HeapIndex = i
	s.grid.Node(Point{X: s.xs[j], Y: s.ys[j]}).HeapIndex = j
	s.swaps++
}

func (s *OpenSet) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if s.prios[parent] <= s.prios[i] {
			return
		}
		s.swap(i, parent)
		i = parent
	}
}

func (s *OpenSet) down(i int) {
	for {
		left := 2*i + 1
		if left >= s.n {
			return
		}
		smallest := i
		if s.prios[left] < s.prios[smallest] {
			smallest = left
		}
		if right := left + 1; right < s.n && s.prios[right] < s.prios[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}
		s.swap(i, smallest)
		i = smallest
	}
}
