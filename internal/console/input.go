package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const prompt = "Enter your move, two numbers separated by a space (row and column): "

// InputSource reads the human's moves line by line. Coordinates are
// typed 1-based and handed to the game 0-based.
type InputSource struct {
	in    io.Reader
	out   io.Writer
	lines chan scannedLine
	once  sync.Once
}

type scannedLine struct {
	text string
	err  error
}

var _ mb.MoveSource = (*InputSource)(nil)

func NewInputSource(in io.Reader, out io.Writer) *InputSource {
	return &InputSource{
		in:    in,
		out:   out,
		lines: make(chan scannedLine),
	}
}

// The scanner runs in its own goroutine so that a blocked read never
// keeps NextTarget from seeing ctx. The goroutine ends with the input.
func (is *InputSource) scan() {
	defer close(is.lines)

	scanner := bufio.NewScanner(is.in)
	for scanner.Scan() {
		is.lines <- scannedLine{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		is.lines <- scannedLine{err: err}
	}
}

func (is *InputSource) NextTarget(ctx context.Context) (mb.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return mb.Coordinates{}, err
	}
	is.once.Do(func() { go is.scan() })

	fmt.Fprint(is.out, prompt)
	select {
	case <-ctx.Done():
		return mb.Coordinates{}, ctx.Err()

	case line, ok := <-is.lines:
		if !ok {
			return mb.Coordinates{}, io.EOF
		}
		if line.err != nil {
			return mb.Coordinates{}, line.err
		}
		return ParseMove(line.text)
	}
}

// ParseMove turns "row col" into 0-based coordinates. Range is not
// checked here; the board rejects coordinates outside it.
func ParseMove(line string) (mb.Coordinates, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mb.Coordinates{}, cerr.ErrInputFormat(line, "enter 2 coordinates")
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInputFormat(line, "enter numbers")
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInputFormat(line, "enter numbers")
	}

	return mb.NewCoordinates(row-1, col-1), nil
}
