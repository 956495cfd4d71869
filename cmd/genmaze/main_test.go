package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazesolver"
	"github.com/pdrpinto/mazesolver/internal/mazeio"
)

func TestRunWritesLoadableMaze(t *testing.T) {
	for _, name := range []string{"maze.txt", "maze.gz"} {
		path := filepath.Join(t.TempDir(), name)

		var stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"-seed", "7", path, "dfs", "8", "5"}, &stderr), stderr.String())
		assert.Contains(t, stderr.String(), "msg=generating")
		assert.Contains(t, stderr.String(), "seed=7")

		in, err := mazeio.Open(path)
		require.NoError(t, err)
		grid, err := mazesolver.Load(in)
		require.NoError(t, err)
		require.NoError(t, in.Close())
		assert.Equal(t, 8, grid.Width())
		assert.Equal(t, 5, grid.Height())

		start, end := mazesolver.DefaultEndpoints(grid)
		res, err := mazesolver.Solve(grid, start, end)
		require.NoError(t, err)
		assert.True(t, res.Found)
	}
}

func TestRunRejectsBadArguments(t *testing.T) {
	out := filepath.Join(t.TempDir(), "maze.txt")
	for _, args := range [][]string{
		nil,
		{out, "dfs", "x", "5"},
		{out, "dfs", "0", "5"},
		{out, "prim", "4", "4"},
		{out, "rand", "4", "4", "300"},
	} {
		var stderr bytes.Buffer
		assert.Equal(t, 1, run(args, &stderr), "%v", args)
	}
}

func TestRunShowDrawsMaze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-seed", "3", "-show", path, "dfs", "4", "3"}, &stderr), stderr.String())
	assert.Contains(t, stderr.String(), "─")
}

// failingWriter rejects every write once the log line has gone through.
type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > 1 {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestRunShowReportsDrawFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")

	w := &failingWriter{}
	assert.Equal(t, 1, run([]string{"-seed", "3", "-show", path, "dfs", "4", "3"}, w))
	assert.Greater(t, w.writes, 1)
}
