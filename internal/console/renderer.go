package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const separatorWidth = 60

// Renderer prints the game to a terminal. The human's board is on the
// left, the computer's on the right with its ships masked.
type Renderer struct {
	out io.Writer
}

var _ mb.Reporter = (*Renderer)(nil)

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) PrintBoards(g *mb.Game) {
	own := g.Player(mb.SideHuman).Board()
	target := g.Player(mb.SideComputer).Board()

	header := boardHeader(own.Dimension())

	fmt.Fprintln(r.out, strings.Repeat("-", separatorWidth))
	fmt.Fprintf(r.out, "%s\t\t%s\n", padRight("  Your ships:", len(header)), "  Computer ships:")
	fmt.Fprintf(r.out, "%s\t\t%s\n", header, header)

	ownRows := own.View().Rows(" | ")
	targetRows := target.View().Rows(" | ")
	for i := range ownRows {
		left := fmt.Sprintf("%d | %s |", i+1, ownRows[i])
		right := fmt.Sprintf("%d | %s |", i+1, targetRows[i])
		fmt.Fprintf(r.out, "%s\t\t%s\n", padRight(left, len(header)), right)
	}
}

func (r *Renderer) ShotResolved(g *mb.Game, shooter mb.Side, outcome mb.ShotOutcome) {
	if shooter == mb.SideComputer {
		fmt.Fprintf(r.out, "Computer move: %d %d\n", outcome.Target.Row+1, outcome.Target.Col+1)
	}

	switch outcome.Result {
	case mb.ShotResultSunk:
		fmt.Fprintln(r.out, "Ship destroyed!")
	case mb.ShotResultHit:
		fmt.Fprintln(r.out, "Ship hit!")
	case mb.ShotResultMiss:
		fmt.Fprintln(r.out, "Miss!")
	}

	if !g.IsOver() {
		r.PrintBoards(g)
	}
}

func (r *Renderer) TargetRejected(g *mb.Game, shooter mb.Side, err error) {
	var formatErr *cerr.InputFormatError

	switch {
	case errors.As(err, &formatErr):
		fmt.Fprintf(r.out, "Error: %s.\n", formatErr.Reason)
	case errors.Is(err, cerr.ErrOutOfBound):
		fmt.Fprintln(r.out, "Error: the coordinates are outside the board!")
	case errors.Is(err, cerr.ErrAlreadyTargeted):
		fmt.Fprintln(r.out, "Error: you already shot at these coordinates.")
	default:
		fmt.Fprintf(r.out, "Error: %s\n", err)
	}
}

func (r *Renderer) GameOver(g *mb.Game, winner mb.Side) {
	r.PrintBoards(g)
	fmt.Fprintln(r.out, strings.Repeat("-", separatorWidth))
	if winner == mb.SideHuman {
		fmt.Fprintln(r.out, "You won! Congratulations!")
	} else {
		fmt.Fprintln(r.out, "The computer won!")
	}
}

func boardHeader(dimension int) string {
	var sb strings.Builder
	sb.WriteString("  |")
	for i := 1; i <= dimension; i++ {
		fmt.Fprintf(&sb, " %d |", i)
	}
	return sb.String()
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
