package mazesolver

import "fmt"

// Result contains the outcome of a search
type Result struct {
	Path        []Point // start to end inclusive; nil when no path exists
	Length      int     // edges on Path
	Found       bool
	Expanded    int // nodes closed
	HeapSwaps   int
	HeapGrowths int
	Stats       Stats
}

// Options defines parameters for the search.
type Options struct {
	Logger        *Logger
	HeapIncrement int
	QueueLimit    int
	Exhaustive    bool
	MaxCells      int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger routes search diagnostics to logger.
func WithLogger(logger *Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithHeapIncrement sets how many slots the open set allocates at a time.
func WithHeapIncrement(increment int) Option {
	return func(options *Options) { options.HeapIncrement = increment }
}

// WithQueueLimit caps the open set capacity. Growing past it fails with
// ErrOutOfMemory. The default is the number of grid cells, which a search
// can never exceed.
func WithQueueLimit(limit int) Option {
	return func(options *Options) { options.QueueLimit = limit }
}

// WithExhaustiveSearch keeps expanding after the start cell is closed,
// until the open set drains. The path found is the same.
func WithExhaustiveSearch() Option {
	return func(options *Options) { options.Exhaustive = true }
}

// WithMaxCells caps width*height of a maze read by Load. A larger header
// fails with ErrOutOfMemory before anything is allocated. The default and
// upper bound is MaxCells.
func WithMaxCells(cells int) Option {
	return func(options *Options) { options.MaxCells = cells }
}

func newOptions(grid *Grid, options []Option) Options {
	opts := Options{
		HeapIncrement: DefaultHeapIncrement,
		QueueLimit:    grid.Cells(),
	}
	for _, option := range options {
		option(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.HeapIncrement <= 0 {
		opts.HeapIncrement = DefaultHeapIncrement
	}
	if opts.QueueLimit <= 0 {
		opts.QueueLimit = grid.Cells()
	}
	return opts
}

// Solve finds a shortest path from start to end.
//
// A maze without a path between the two cells is not an error: the returned
// Result has Found set to false and a nil error.
func Solve(grid *Grid, start, end Point, options ...Option) (Result, error) {
	session, err := NewSession(grid, start, end, options...)
	if err != nil {
		return Result{}, err
	}
	result, err := session.Run()
	if err != nil {
		return Result{}, err
	}
	session.logger.LogSolve(start, end, result)
	return result, nil
}

// DefaultEndpoints returns the bottom-left start and top-right end cells.
func DefaultEndpoints(grid *Grid) (start, end Point) {
	return Point{X: 0, Y: grid.Height() - 1}, Point{X: grid.Width() - 1, Y: 0}
}

func checkEndpoints(grid *Grid, start, end Point) error {
	if !grid.InBounds(start) {
		return fmt.Errorf("start %v on %d x %d grid: %w", start, grid.Width(), grid.Height(), ErrOutOfBounds)
	}
	if !grid.InBounds(end) {
		return fmt.Errorf("end %v on %d x %d grid: %w", end, grid.Width(), grid.Height(), ErrOutOfBounds)
	}
	return nil
}
