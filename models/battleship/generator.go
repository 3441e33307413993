package battleship

import (
	"context"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const (
	DefaultDimension            = 6
	DefaultMaxPlacementAttempts = 2000
)

func DefaultFleet() []int {
	return []int{3, 2, 2, 1, 1, 1, 1}
}

type BoardGenerator struct {
	rng         Random
	dimension   int
	fleet       []int
	maxAttempts int
}

func NewBoardGenerator(rng Random, dimension int, fleet []int, maxAttempts int) *BoardGenerator {
	return &BoardGenerator{
		rng:         rng,
		dimension:   dimension,
		fleet:       append([]int(nil), fleet...),
		maxAttempts: maxAttempts,
	}
}

func (bg *BoardGenerator) Fleet() []int {
	return append([]int(nil), bg.fleet...)
}

// GenerateOnce makes a single attempt at placing the whole fleet.
// The attempt budget is shared by every ship of the board; once it
// is spent the partial board is dropped.
func (bg *BoardGenerator) GenerateOnce() (*Board, error) {
	board := NewBoard(bg.dimension, false)
	attempts := 0

	for _, length := range bg.fleet {
	placeLoop:
		for {
			attempts++
			if attempts > bg.maxAttempts {
				return nil, cerr.ErrGenerationExhausted
			}

			bow := NewCoordinates(bg.rng.Intn(bg.dimension), bg.rng.Intn(bg.dimension))
			ship := NewShip(bow, length, Orientation(bg.rng.Intn(2)))

			switch board.AddShip(ship) {
			case PlacementOK:
				break placeLoop
			case PlacementOutOfBounds, PlacementCollision:
				continue placeLoop
			}
		}
	}

	board.Begin()
	return board, nil
}

// Generate retries GenerateOnce until a board comes out. A fresh
// layout almost always fits, so only ctx bounds the loop.
func (bg *BoardGenerator) Generate(ctx context.Context) (*Board, error) {
	for retries := 0; ; retries++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		board, err := bg.GenerateOnce()
		if err == nil {
			return board, nil
		}
		log.Debug("board generation exhausted; retrying", "retry", retries+1, "dimension", bg.dimension)
	}
}
