package battleship

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

type scriptedMove struct {
	target Coordinates
	err    error
}

type scriptedSource struct {
	moves []scriptedMove
	calls int
}

func (s *scriptedSource) NextTarget(ctx context.Context) (Coordinates, error) {
	if s.calls >= len(s.moves) {
		return Coordinates{}, errors.New("script exhausted")
	}
	move := s.moves[s.calls]
	s.calls++
	return move.target, move.err
}

type recordingReporter struct {
	shots     []ShotOutcome
	shooters  []Side
	rejected  []error
	gameOvers []Side
}

func (r *recordingReporter) ShotResolved(g *Game, shooter Side, outcome ShotOutcome) {
	r.shots = append(r.shots, outcome)
	r.shooters = append(r.shooters, shooter)
}

func (r *recordingReporter) TargetRejected(g *Game, shooter Side, err error) {
	r.rejected = append(r.rejected, err)
}

func (r *recordingReporter) GameOver(g *Game, winner Side) {
	r.gameOvers = append(r.gameOvers, winner)
}

func boardWith(t *testing.T, ships ...*Ship) *Board {
	t.Helper()
	board := NewBoard(6, false)
	for _, ship := range ships {
		require.Equal(t, PlacementOK, board.AddShip(ship))
	}
	board.Begin()
	return board
}

func newTestGame(t *testing.T, reporter Reporter) *Game {
	human := NewPlayer(SideHuman, boardWith(t,
		NewShip(NewCoordinates(0, 0), 1, OrientationHorizontal),
		NewShip(NewCoordinates(5, 5), 1, OrientationHorizontal),
	), nil)
	computer := NewPlayer(SideComputer, boardWith(t,
		NewShip(NewCoordinates(0, 0), 2, OrientationHorizontal),
		NewShip(NewCoordinates(4, 4), 1, OrientationHorizontal),
	), nil)
	return NewGame("test01", human, computer, 2, reporter)
}

func TestGameFireTurnOrder(t *testing.T) {
	reporter := &recordingReporter{}
	game := newTestGame(t, reporter)

	assert.True(t, game.Player(SideComputer).Board().IsHidden())
	assert.False(t, game.Player(SideHuman).Board().IsHidden())

	steps := []struct {
		name           string
		target         Coordinates
		expectedStatus ShotStatus
		expectedResult ShotResult
		expectedState  GameState
	}{
		{"human misses", NewCoordinates(3, 3), ShotAccepted, ShotResultMiss, StateComputerTurn},
		{"computer sinks", NewCoordinates(0, 0), ShotAccepted, ShotResultSunk, StateComputerTurn},
		{"computer misses", NewCoordinates(2, 2), ShotAccepted, ShotResultMiss, StateHumanTurn},
		{"human hits", NewCoordinates(0, 0), ShotAccepted, ShotResultHit, StateHumanTurn},
		{"human repeats", NewCoordinates(0, 0), ShotAlreadyTargeted, ShotResultNone, StateHumanTurn},
		{"human out of bounds", NewCoordinates(9, 9), ShotOutOfBounds, ShotResultNone, StateHumanTurn},
		{"human sinks", NewCoordinates(0, 1), ShotAccepted, ShotResultSunk, StateHumanTurn},
		{"human wins", NewCoordinates(4, 4), ShotAccepted, ShotResultSunk, StateGameOver},
	}

	for _, step := range steps {
		outcome, err := game.Fire(step.target)
		require.NoError(t, err, step.name)
		assert.Equal(t, step.expectedStatus, outcome.Status, step.name)
		assert.Equal(t, step.expectedResult, outcome.Result, step.name)
		assert.Equal(t, step.expectedState, game.State(), step.name)
	}

	winner, over := game.Winner()
	assert.True(t, over)
	assert.Equal(t, SideHuman, winner)
	assert.Equal(t, 2, game.Player(SideComputer).SunkenShips())
	assert.Equal(t, 1, game.Player(SideHuman).SunkenShips())

	assert.Len(t, reporter.shots, 6)
	assert.Equal(t, []Side{SideHuman, SideComputer, SideComputer, SideHuman, SideHuman, SideHuman}, reporter.shooters)
	assert.Len(t, reporter.rejected, 2)
	assert.Equal(t, []Side{SideHuman}, reporter.gameOvers)

	_, err := game.Fire(NewCoordinates(1, 1))
	assert.ErrorIs(t, err, cerr.ErrGameOver)
}

func TestGamePlayTurnRetriesRecoverableFailures(t *testing.T) {
	reporter := &recordingReporter{}
	game := newTestGame(t, reporter)
	game.Player(SideHuman).SetSource(&scriptedSource{moves: []scriptedMove{
		{err: cerr.ErrInputFormat("a b", "enter numbers")},
		{target: NewCoordinates(6, 0)},
		{target: NewCoordinates(3, 3)},
	}})

	outcome, err := game.PlayTurn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, NewCoordinates(3, 3), outcome.Target)
	assert.Equal(t, ShotResultMiss, outcome.Result)
	assert.Len(t, reporter.rejected, 2)
	assert.Equal(t, StateComputerTurn, game.State())
}

func TestGamePlayTurnStopsOnSourceError(t *testing.T) {
	game := newTestGame(t, nil)
	game.Player(SideHuman).SetSource(&scriptedSource{})

	_, err := game.PlayTurn(context.Background())
	assert.EqualError(t, err, "script exhausted")
	assert.Equal(t, StateHumanTurn, game.State())
}

func TestGamePlayTurnWithoutSource(t *testing.T) {
	game := newTestGame(t, nil)

	_, err := game.PlayTurn(context.Background())
	assert.Error(t, err)
}

func TestGameRunRandomPlayers(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := NewRandom(seed)
		reporter := &recordingReporter{}

		game, err := NewComputerGame(context.Background(), rng, DefaultSettings(), nil, reporter)
		require.NoError(t, err)
		game.Player(SideHuman).SetSource(NewRandomMoveSource(rng, game.Player(SideComputer).Board(), DefaultMaxTargetAttempts))

		winner, err := game.Run(context.Background())
		require.NoError(t, err)
		require.True(t, game.IsOver())

		loser := game.Player(winner.Other()).Board()
		assert.Equal(t, len(DefaultFleet()), loser.SunkenShips())
		assert.True(t, loser.IsFleetDestroyed())
		assert.Less(t, game.Player(winner).SunkenShips(), len(DefaultFleet()))
		assert.Equal(t, []Side{winner}, reporter.gameOvers)
		assert.Empty(t, reporter.rejected, "random sources never pick blocked cells")

		// after every miss the turn passes to the other side
		for i := 1; i < len(reporter.shots); i++ {
			if reporter.shots[i-1].Result == ShotResultMiss {
				assert.NotEqual(t, reporter.shooters[i-1], reporter.shooters[i])
			} else {
				assert.Equal(t, reporter.shooters[i-1], reporter.shooters[i])
			}
		}
	}
}
