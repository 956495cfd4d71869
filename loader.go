package mazesolver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxDimensionDigits bounds each token of the header line.
const maxDimensionDigits = 11

// Load reads a maze in text form.
//
// The first line holds "HEIGHT WIDTH". Each of the HEIGHT rows follows as a
// wall row of WIDTH cells, "O . " for a passage to the east and "O | " for a
// wall, ending in a bare "O"; every row but the last is followed by a floor
// row of "." (passage to the south) or "-" (wall) cells padded to four
// characters. Every line is 4*WIDTH-2 bytes including the newline.
//
// Only WithMaxCells applies to loading.
func Load(r io.Reader, options ...Option) (*Grid, error) {
	var opts Options
	for _, option := range options {
		option(&opts)
	}
	if opts.MaxCells <= 0 || opts.MaxCells > MaxCells {
		opts.MaxCells = MaxCells
	}
	in := bufio.NewReader(r)

	height, width, err := readDimensions(in)
	if err != nil {
		return nil, err
	}
	if int64(width)*int64(height) > int64(opts.MaxCells) {
		return nil, fmt.Errorf("%w: %d x %d maze exceeds %d cells", ErrOutOfMemory, width, height, opts.MaxCells)
	}
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	lineLen := 4*width - 2
	buf := make([]byte, lineLen)
	line := 1
	for y := 0; y < height; y++ {
		last := y == height-1

		line++
		if err := readRow(in, buf, line, last); err != nil {
			return nil, err
		}
		for x := 0; x < width; x++ {
			if buf[4*x] != 'O' {
				return nil, &MalformedInputError{Line: line, Reason: fmt.Sprintf("expected 'O' at column %d, got %q", 4*x, buf[4*x])}
			}
			if x == width-1 {
				break
			}
			switch buf[4*x+2] {
			case '.':
				if err := grid.SetPassage(x, y, East); err != nil {
					return nil, err
				}
			case '|':
			default:
				return nil, &MalformedInputError{Line: line, Reason: fmt.Sprintf("expected '.' or '|' at column %d, got %q", 4*x+2, buf[4*x+2])}
			}
		}
		if last {
			break
		}

		line++
		if err := readRow(in, buf, line, false); err != nil {
			return nil, err
		}
		for x := 0; x < width; x++ {
			switch buf[4*x] {
			case '.':
				if err := grid.SetPassage(x, y, South); err != nil {
					return nil, err
				}
			case '-':
			default:
				return nil, &MalformedInputError{Line: line, Reason: fmt.Sprintf("expected '.' or '-' at column %d, got %q", 4*x, buf[4*x])}
			}
		}
	}
	return grid, nil
}

// readRow fills buf with one line. The final line may lack its newline.
func readRow(in *bufio.Reader, buf []byte, line int, last bool) error {
	n, err := io.ReadFull(in, buf)
	switch {
	case err == nil:
	case last && n == len(buf)-1 && errors.Is(err, io.ErrUnexpectedEOF):
		buf[n] = '\n'
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &MalformedInputError{Line: line, Read: n, Expected: len(buf), Reason: "file ended prematurely"}
	default:
		return fmt.Errorf("read line %d: %w", line, err)
	}
	if buf[len(buf)-1] != '\n' {
		return &MalformedInputError{Line: line, Read: n, Expected: len(buf), Reason: "row length mismatch"}
	}
	return nil
}

// readDimensions parses "HEIGHT WIDTH\n". Extra spaces between the tokens
// are skipped.
func readDimensions(in *bufio.Reader) (height, width int, err error) {
	token := func(stop byte, skipLeading bool) (string, error) {
		var b []byte
		for {
			c, err := in.ReadByte()
			if errors.Is(err, io.EOF) {
				return "", &MalformedInputError{Line: 1, Reason: "file ended while reading dimensions"}
			}
			if err != nil {
				return "", fmt.Errorf("read dimensions: %w", err)
			}
			if skipLeading && len(b) == 0 && c == ' ' {
				continue
			}
			if c == stop {
				return string(b), nil
			}
			if len(b) == maxDimensionDigits {
				return "", &MalformedInputError{Line: 1, Reason: "dimension is too long"}
			}
			b = append(b, c)
		}
	}
	parse := func(s, name string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return 0, &MalformedInputError{Line: 1, Reason: fmt.Sprintf("invalid %s %q", name, s)}
		}
		return v, nil
	}

	h, err := token(' ', false)
	if err != nil {
		return 0, 0, err
	}
	w, err := token('\n', true)
	if err != nil {
		return 0, 0, err
	}
	if height, err = parse(h, "height"); err != nil {
		return 0, 0, err
	}
	if width, err = parse(w, "width"); err != nil {
		return 0, 0, err
	}
	return height, width, nil
}

// Write renders grid in the text form read by Load.
func Write(w io.Writer, grid *Grid) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%d %d\n", grid.Height(), grid.Width())
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width()-1; x++ {
			if grid.Passages(Point{X: x, Y: y})&East != 0 {
				out.WriteString("O . ")
			} else {
				out.WriteString("O | ")
			}
		}
		out.WriteString("O\n")
		if y == grid.Height()-1 {
			break
		}
		for x := 0; x < grid.Width(); x++ {
			mark := byte('-')
			if grid.Passages(Point{X: x, Y: y})&South != 0 {
				mark = '.'
			}
			out.WriteByte(mark)
			if x < grid.Width()-1 {
				out.WriteString("   ")
			}
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}
