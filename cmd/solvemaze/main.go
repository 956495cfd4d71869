// Command solvemaze finds the shortest path through a maze file.
//
//	solvemaze [flags] FILE [START_X START_Y END_X END_Y]
//
// FILE may be "-" for standard input and may be gzip, zstd or lz4 compressed.
// Without coordinates the path runs from the bottom-left to the top-right corner.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/pdrpinto/mazesolver"
	"github.com/pdrpinto/mazesolver/internal/mazeio"
	"github.com/pdrpinto/mazesolver/internal/render"
)

const usageText = `Usage: solvemaze [flags] FILE [START_X START_Y END_X END_Y]
	FILE can be - to read from stdin.
	Leaving the starting and ending coordinates out will
	automatically choose the bottom left and top right
	corners, respectively.

Flags:
`

var errUsage = errors.New("usage")

type config struct {
	verbose      bool
	logJSON      bool
	solutionFile string
	inlineLimit  int
	color        string
	trace        bool
	maxCells     int

	file       string
	endpoints  []int
	hasCorners bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("solvemaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.verbose, "v", false, "log progress at debug level")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "log in JSON")
	fs.StringVar(&cfg.solutionFile, "solution-file", "solution.txt", "where long solutions are written")
	fs.IntVar(&cfg.inlineLimit, "inline-limit", 100, "longest path printed to stdout")
	fs.StringVar(&cfg.color, "color", "auto", "colour the rendering: auto, always or never")
	fs.BoolVar(&cfg.trace, "trace", false, "print every search step to stderr")
	fs.IntVar(&cfg.maxCells, "max-cells", mazesolver.MaxCells, "largest maze accepted, in cells")
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, errUsage
	}

	rest := fs.Args()
	switch len(rest) {
	case 1:
	case 5:
		cfg.hasCorners = true
		for _, a := range rest[1:] {
			v, err := strconv.Atoi(a)
			if err != nil {
				fmt.Fprintf(stderr, "Invalid coordinate %q.\n", a)
				return cfg, errUsage
			}
			cfg.endpoints = append(cfg.endpoints, v)
		}
	default:
		fs.Usage()
		return cfg, errUsage
	}
	switch cfg.color {
	case "auto", "always", "never":
	default:
		fmt.Fprintf(stderr, "Invalid -color %q.\n", cfg.color)
		return cfg, errUsage
	}
	cfg.file = rest[0]
	return cfg, nil
}

func newLogger(cfg config, stderr io.Writer) *mazesolver.Logger {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	if cfg.logJSON {
		return mazesolver.NewJSONLogger(stderr, level)
	}
	return mazesolver.NewTextLogger(stderr, level)
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return 1
	}
	logger := newLogger(cfg, stderr)

	logger.Debug("reading maze", "file", cfg.file)
	in, err := mazeio.Open(cfg.file)
	if err != nil {
		logger.Error("open maze failed", "file", cfg.file, "error", err)
		return 1
	}
	defer in.Close()

	grid, err := mazesolver.Load(in, mazesolver.WithMaxCells(cfg.maxCells))
	if err != nil {
		logger.Error("parse maze failed", "file", cfg.file, "error", err)
		return 1
	}
	logger.Debug("parsed maze", "width", grid.Width(), "height", grid.Height())

	start, end := mazesolver.DefaultEndpoints(grid)
	if cfg.hasCorners {
		start = mazesolver.Point{X: cfg.endpoints[0], Y: cfg.endpoints[1]}
		end = mazesolver.Point{X: cfg.endpoints[2], Y: cfg.endpoints[3]}
		if !grid.InBounds(start) || !grid.InBounds(end) {
			fmt.Fprintln(stderr, "Invalid start/end coordinates.")
			return 1
		}
	}

	res, err := solve(cfg, grid, start, end, stderr, logger)
	if err != nil {
		logger.Error("search failed", "error", err)
		return 1
	}
	if !res.Found {
		return 0
	}

	if err := writeSolution(cfg, res, stdout, logger); err != nil {
		logger.Error("write solution failed", "error", err)
		return 1
	}
	if err := render.Summary(stderr, res); err != nil {
		return 1
	}

	tty, columns := terminal(stdout)
	if tty && columns > 0 && render.Columns(grid) > columns {
		logger.Info("maze too wide for the terminal, eliding the graphical representation",
			"columns", columns, "needed", render.Columns(grid))
		return 0
	}
	color := cfg.color == "always" || (cfg.color == "auto" && tty)
	if err := render.Graphic(stdout, grid, mazesolver.NewPathSet(grid, res.Path), color); err != nil {
		logger.Error("render failed", "error", err)
		return 1
	}
	return 0
}

// solve runs the search, tracing each step when asked to.
func solve(cfg config, grid *mazesolver.Grid, start, end mazesolver.Point, stderr io.Writer, logger *mazesolver.Logger) (mazesolver.Result, error) {
	if !cfg.trace {
		return mazesolver.Solve(grid, start, end, mazesolver.WithLogger(logger))
	}
	session, err := mazesolver.NewSession(grid, start, end, mazesolver.WithLogger(logger))
	if err != nil {
		return mazesolver.Result{}, err
	}
	for !session.Done() {
		snap, err := session.Step()
		if err != nil {
			return mazesolver.Result{}, err
		}
		if snap.Done && !snap.Found {
			break
		}
		if err := render.Step(stderr, snap); err != nil {
			return mazesolver.Result{}, err
		}
	}
	res, err := session.Run()
	if err != nil {
		return mazesolver.Result{}, err
	}
	logger.LogSolve(start, end, res)
	return res, nil
}

func writeSolution(cfg config, res mazesolver.Result, stdout io.Writer, logger *mazesolver.Logger) error {
	if res.Length <= cfg.inlineLimit {
		return render.Solution(stdout, res.Path)
	}
	logger.Info("solution is longer than the inline limit, writing it to a file",
		"length", res.Length, "file", cfg.solutionFile)
	f, err := os.Create(cfg.solutionFile)
	if err != nil {
		return err
	}
	if err := render.Solution(f, res.Path); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// terminal reports whether w is a terminal and its width in columns.
func terminal(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 0
	}
	columns, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true, 0
	}
	return true, columns
}
