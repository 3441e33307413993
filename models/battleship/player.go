package battleship

import (
	"context"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const DefaultMaxTargetAttempts = 1000

// MoveSource supplies the coordinates a side wants to shoot at.
// A *cerr.InputFormatError is recoverable and makes the game ask
// again; any other error stops the game.
type MoveSource interface {
	NextTarget(ctx context.Context) (Coordinates, error)
}

// TargetBoard is the read access a move source gets to the
// board it is shooting at.
type TargetBoard interface {
	Dimension() int
	IsBlocked(c Coordinates) bool
}

// RandomMoveSource picks uniformly among the coordinates that are
// not blocked on the target board.
type RandomMoveSource struct {
	rng         Random
	target      TargetBoard
	maxAttempts int
}

var _ MoveSource = (*RandomMoveSource)(nil)

func NewRandomMoveSource(rng Random, target TargetBoard, maxAttempts int) *RandomMoveSource {
	return &RandomMoveSource{
		rng:         rng,
		target:      target,
		maxAttempts: maxAttempts,
	}
}

func (rs *RandomMoveSource) NextTarget(ctx context.Context) (Coordinates, error) {
	dimension := rs.target.Dimension()

	for attempt := 0; attempt < rs.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Coordinates{}, err
		}

		c := NewCoordinates(rs.rng.Intn(dimension), rs.rng.Intn(dimension))
		if !rs.target.IsBlocked(c) {
			return c, nil
		}
	}
	return Coordinates{}, cerr.ErrNoFreeTarget
}

type Side uint8

const (
	SideHuman Side = iota
	SideComputer
)

func (s Side) Other() Side {
	if s == SideHuman {
		return SideComputer
	}
	return SideHuman
}

func (s Side) String() string {
	if s == SideHuman {
		return "human"
	}
	return "computer"
}

// Player owns a board and the source of its moves.
// Source is nil for sides driven through Game.Fire.
type Player struct {
	side   Side
	board  *Board
	source MoveSource
}

func NewPlayer(side Side, board *Board, source MoveSource) *Player {
	return &Player{
		side:   side,
		board:  board,
		source: source,
	}
}

func (p *Player) Side() Side {
	return p.side
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) Source() MoveSource {
	return p.source
}

func (p *Player) SetSource(source MoveSource) {
	p.source = source
}

func (p *Player) SunkenShips() int {
	return p.board.SunkenShips()
}
