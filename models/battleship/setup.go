package battleship

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Settings are the knobs of a session. The win threshold of a game
// is always len(Fleet).
type Settings struct {
	Dimension            int
	Fleet                []int
	MaxPlacementAttempts int
	MaxTargetAttempts    int
}

func DefaultSettings() Settings {
	return Settings{
		Dimension:            DefaultDimension,
		Fleet:                DefaultFleet(),
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
		MaxTargetAttempts:    DefaultMaxTargetAttempts,
	}
}

// NewComputerGame generates both boards and pits humanSource against
// a random computer player. humanSource may be nil when the human's
// shots are pushed through Game.Fire.
func NewComputerGame(ctx context.Context, rng Random, settings Settings, humanSource MoveSource, reporter Reporter) (*Game, error) {
	generator := NewBoardGenerator(rng, settings.Dimension, settings.Fleet, settings.MaxPlacementAttempts)

	humanBoard, err := generator.Generate(ctx)
	if err != nil {
		return nil, err
	}
	computerBoard, err := generator.Generate(ctx)
	if err != nil {
		return nil, err
	}

	human := NewPlayer(SideHuman, humanBoard, humanSource)
	computer := NewPlayer(SideComputer, computerBoard, NewRandomMoveSource(rng, humanBoard, settings.MaxTargetAttempts))

	return NewGame(uuid.NewString(), human, computer, len(settings.Fleet), reporter), nil
}

// LockedRandom makes a Random safe to share between sessions.
type LockedRandom struct {
	mu  sync.Mutex
	rng Random
}

func NewLockedRandom(rng Random) *LockedRandom {
	return &LockedRandom{rng: rng}
}

func (lr *LockedRandom) Intn(n int) int {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.rng.Intn(n)
}
