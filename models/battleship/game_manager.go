package battleship

import (
	"context"
	"sync"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

type GameManager interface {
	CreateGame(ctx context.Context) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	Settings() Settings
}

type BattleshipGameManager struct {
	games    map[string]*Game
	rng      Random
	settings Settings
	mu       sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(rng Random, settings Settings) *BattleshipGameManager {
	return &BattleshipGameManager{
		games:    make(map[string]*Game, 10),
		rng:      NewLockedRandom(rng),
		settings: settings,
	}
}

func (bgm *BattleshipGameManager) Settings() Settings {
	return bgm.settings
}

// Games created here have no human move source; the session
// pushes the human's shots with Game.Fire.
func (bgm *BattleshipGameManager) CreateGame(ctx context.Context) (*Game, error) {
	game, err := NewComputerGame(ctx, bgm.rng, bgm.settings, nil, nil)
	if err != nil {
		return nil, err
	}
	if err := bgm.register(game); err != nil {
		return nil, err
	}

	return game, nil
}

// register never replaces a live game under the same uuid.
func (bgm *BattleshipGameManager) register(game *Game) error {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	if _, prs := bgm.games[game.Uuid()]; prs {
		return cerr.ErrGameAlreadyExists(game.Uuid())
	}
	bgm.games[game.Uuid()] = game
	return nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	if game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) CountGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
