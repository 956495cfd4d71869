// Command genmaze writes a random maze in the format read by solvemaze.
//
//	genmaze [flags] OUTPUT_FILE ALGORITHM WIDTH HEIGHT [RANDOMNESS]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/pdrpinto/mazesolver"
	"github.com/pdrpinto/mazesolver/internal/mazegen"
	"github.com/pdrpinto/mazesolver/internal/mazeio"
	"github.com/pdrpinto/mazesolver/internal/render"
)

const usageText = `Usage: genmaze [flags] OUTPUT_FILE ALGORITHM WIDTH HEIGHT [RANDOMNESS]

ALGORITHM: rand OR dfs
RANDOMNESS: odds of adding a(n extra, for dfs) connection, out of 256
OUTPUT_FILE: - for stdout; .gz, .zst and .lz4 names are compressed

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("genmaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Uint64("seed", 0, "random seed; 0 picks one from the clock")
	show := fs.Bool("show", false, "draw the maze on stderr")
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	rest := fs.Args()
	if len(rest) != 4 && len(rest) != 5 {
		fs.Usage()
		return 1
	}

	alg := mazegen.Algorithm(rest[1])
	width, errW := strconv.Atoi(rest[2])
	height, errH := strconv.Atoi(rest[3])
	if errW != nil || errH != nil {
		fmt.Fprintln(stderr, "Invalid dimensions.")
		return 1
	}
	odds := mazegen.DefaultOdds(alg)
	if len(rest) == 5 {
		v, err := strconv.Atoi(rest[4])
		if err != nil || v < 0 || v > 256 {
			fmt.Fprintln(stderr, "Invalid randomness.")
			return 1
		}
		odds = v
	}
	logger := mazesolver.NewTextLogger(stderr, slog.LevelInfo)

	grid, err := mazesolver.NewGrid(width, height)
	if err != nil {
		logger.Error("allocate maze failed", "error", err)
		return 1
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	logger.Info("generating", "algorithm", alg, "width", width, "height", height, "odds", odds, "seed", *seed)
	rng := rand.New(rand.NewPCG(*seed, *seed>>1|1))
	if err := mazegen.Generate(grid, alg, odds, rng); err != nil {
		logger.Error("generate failed", "error", err)
		return 1
	}

	out, err := mazeio.Create(rest[0])
	if err != nil {
		logger.Error("create output failed", "file", rest[0], "error", err)
		return 1
	}
	if err := mazesolver.Write(out, grid); err != nil {
		out.Close()
		logger.Error("write maze failed", "error", err)
		return 1
	}
	if err := out.Close(); err != nil {
		logger.Error("close output failed", "error", err)
		return 1
	}
	if *show {
		if err := render.Maze(stderr, grid); err != nil {
			logger.Error("draw maze failed", "error", err)
			return 1
		}
	}
	return 0
}
