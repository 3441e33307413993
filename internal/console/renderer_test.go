package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

func newRenderedGame(t *testing.T, out *bytes.Buffer) *mb.Game {
	t.Helper()

	humanBoard := mb.NewBoard(3, false)
	require.Equal(t, mb.PlacementOK, humanBoard.AddShip(mb.NewShip(mb.NewCoordinates(0, 0), 1, mb.OrientationHorizontal)))
	humanBoard.Begin()

	computerBoard := mb.NewBoard(3, false)
	require.Equal(t, mb.PlacementOK, computerBoard.AddShip(mb.NewShip(mb.NewCoordinates(2, 1), 2, mb.OrientationHorizontal)))
	computerBoard.Begin()

	return mb.NewGame("render", mb.NewPlayer(mb.SideHuman, humanBoard, nil), mb.NewPlayer(mb.SideComputer, computerBoard, nil), 1, NewRenderer(out))
}

func TestPrintBoardsHidesComputerShips(t *testing.T) {
	var out bytes.Buffer
	game := newRenderedGame(t, &out)

	NewRenderer(&out).PrintBoards(game)

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Contains(t, lines[2], "  | 1 | 2 | 3 |")
	assert.True(t, strings.HasPrefix(lines[3], "1 | ■ | O | O |"))
	assert.True(t, strings.HasSuffix(lines[5], "3 | O | O | O |"), "computer ships must be masked: %q", lines[5])
}

func TestRendererReportsShots(t *testing.T) {
	var out bytes.Buffer
	game := newRenderedGame(t, &out)

	_, err := game.Fire(mb.NewCoordinates(0, 0))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Miss!")

	out.Reset()
	_, err = game.Fire(mb.NewCoordinates(0, 0))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Computer move: 1 1")
	assert.Contains(t, out.String(), "Ship destroyed!")
	assert.Contains(t, out.String(), "The computer won!")
	assert.NotContains(t, out.String(), "You won!")
}

func TestRendererReportsRejections(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"format", cerr.ErrInputFormat("x", "enter numbers"), "Error: enter numbers."},
		{"out of bound", cerr.ErrCoordinatesOutOfBound(7, 7, 6), "outside the board"},
		{"repeated", cerr.ErrCoordinatesAlreadyTargeted(1, 1), "already shot"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			NewRenderer(&out).TargetRejected(nil, mb.SideHuman, test.err)
			assert.Contains(t, out.String(), test.expected)
		})
	}
}

func TestConsoleInputRetriesBadLines(t *testing.T) {
	var out bytes.Buffer
	game := newRenderedGame(t, &out)
	game.Player(mb.SideHuman).SetSource(NewInputSource(strings.NewReader("bad\n1 1\n"), &out))

	_, err := game.PlayTurn(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Error: enter 2 coordinates.")
	assert.Equal(t, mb.StateComputerTurn, game.State())
}
