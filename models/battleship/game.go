package battleship

import (
	"context"
	"errors"
	"fmt"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

type GameState uint8

const (
	StateHumanTurn GameState = iota
	StateComputerTurn
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateHumanTurn:
		return "human turn"
	case StateComputerTurn:
		return "computer turn"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Reporter observes the game. It is called synchronously, so it may
// read both boards knowing nothing moves under it.
type Reporter interface {
	ShotResolved(g *Game, shooter Side, outcome ShotOutcome)
	TargetRejected(g *Game, shooter Side, err error)
	GameOver(g *Game, winner Side)
}

type NopReporter struct{}

func (NopReporter) ShotResolved(*Game, Side, ShotOutcome) {}
func (NopReporter) TargetRejected(*Game, Side, error)     {}
func (NopReporter) GameOver(*Game, Side)                  {}

var _ Reporter = NopReporter{}

// Game alternates shots between the human and the computer. The
// human shoots first; a hit keeps the turn, a miss passes it.
type Game struct {
	uuid      string
	players   [2]*Player
	state     GameState
	winner    Side
	fleetSize int
	reporter  Reporter
}

func NewGame(uuid string, human, computer *Player, fleetSize int, reporter Reporter) *Game {
	if reporter == nil {
		reporter = NopReporter{}
	}
	computer.board.SetHidden(true)

	game := &Game{
		uuid:      uuid,
		state:     StateHumanTurn,
		fleetSize: fleetSize,
		reporter:  reporter,
	}
	game.players[SideHuman] = human
	game.players[SideComputer] = computer
	return game
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) FleetSize() int {
	return g.fleetSize
}

func (g *Game) IsOver() bool {
	return g.state == StateGameOver
}

// Winner is only meaningful once the game is over.
func (g *Game) Winner() (Side, bool) {
	return g.winner, g.IsOver()
}

func (g *Game) Player(side Side) *Player {
	return g.players[side]
}

func (g *Game) ActiveSide() Side {
	if g.state == StateComputerTurn {
		return SideComputer
	}
	return SideHuman
}

func (g *Game) SetReporter(reporter Reporter) {
	if reporter == nil {
		reporter = NopReporter{}
	}
	g.reporter = reporter
}

// Fire shoots the active side at the opponent's board. A rejected
// shot is reported and leaves the turn where it was.
func (g *Game) Fire(target Coordinates) (ShotOutcome, error) {
	if g.IsOver() {
		return ShotOutcome{}, cerr.ErrGameOver
	}

	shooter := g.ActiveSide()
	outcome := g.players[shooter.Other()].board.Shoot(target)
	if !outcome.Accepted() {
		g.reporter.TargetRejected(g, shooter, outcome.Err())
		return outcome, nil
	}

	g.advance(shooter, outcome)

	g.reporter.ShotResolved(g, shooter, outcome)
	if g.IsOver() {
		g.reporter.GameOver(g, g.winner)
	}
	return outcome, nil
}

func (g *Game) advance(shooter Side, outcome ShotOutcome) {
	switch {
	case g.players[shooter.Other()].SunkenShips() >= g.fleetSize:
		g.finish(shooter)
	case g.players[shooter].SunkenShips() >= g.fleetSize:
		g.finish(shooter.Other())
	case outcome.ShootAgain():
		// same side goes again
	case shooter == SideHuman:
		g.state = StateComputerTurn
	default:
		g.state = StateHumanTurn
	}
}

func (g *Game) finish(winner Side) {
	g.state = StateGameOver
	g.winner = winner
}

// PlayTurn asks the active side for targets until one shot is
// accepted. Bad input and rejected targets only cause another ask.
func (g *Game) PlayTurn(ctx context.Context) (ShotOutcome, error) {
	if g.IsOver() {
		return ShotOutcome{}, cerr.ErrGameOver
	}

	shooter := g.ActiveSide()
	source := g.players[shooter].source
	if source == nil {
		return ShotOutcome{}, fmt.Errorf("no move source for the %s side", shooter)
	}

	for {
		target, err := source.NextTarget(ctx)
		if err != nil {
			var formatErr *cerr.InputFormatError
			if errors.As(err, &formatErr) {
				g.reporter.TargetRejected(g, shooter, err)
				continue
			}
			return ShotOutcome{}, err
		}

		outcome, err := g.Fire(target)
		if err != nil {
			return ShotOutcome{}, err
		}
		if outcome.Accepted() {
			return outcome, nil
		}
	}
}

// Run plays turns until one fleet is gone and returns the winner.
func (g *Game) Run(ctx context.Context) (Side, error) {
	for !g.IsOver() {
		if _, err := g.PlayTurn(ctx); err != nil {
			return g.winner, err
		}
	}
	return g.winner, nil
}
