package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrAttackFailed = "attack operation failed"
)

var (
	// Returned by a single generation attempt once the
	// placement budget of the board is spent.
	ErrGenerationExhausted = errors.New("board generation exhausted its placement attempts")

	// Returned by the computer move source when sampling
	// could not find a coordinate that was not targeted yet.
	ErrNoFreeTarget = errors.New("no free target coordinate could be found")

	ErrGameOver = errors.New("game is already over")

	ErrOutOfBound      = errors.New("coordinates are out of the board")
	ErrAlreadyTargeted = errors.New("these coordinates were already targeted")
)

// InputFormatError is recoverable: the caller asks for new input.
type InputFormatError struct {
	Input  string
	Reason string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

func ErrInputFormat(input, reason string) error {
	return &InputFormatError{Input: input, Reason: reason}
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameAlreadyExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid already exists, uuid: %s", gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session not found, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s", sessionId)
}

func ErrCoordinatesOutOfBound(row, col, dimension int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d\tdimension: %d", ErrOutOfBound, row, col, dimension)
}

func ErrCoordinatesAlreadyTargeted(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrAlreadyTargeted, row, col)
}

func ErrNotPlayerTurn() error {
	return fmt.Errorf("it is not the player's turn")
}

func ErrGameNotCreated() error {
	return fmt.Errorf("no game is created for this session")
}

func ErrInvalidDimension(dimension int) error {
	return fmt.Errorf("board dimension must be at least 1, got: %d", dimension)
}

func ErrInvalidShipLength(length, dimension int) error {
	return fmt.Errorf("ship length must be between 1 and the board dimension\tlength: %d\tdimension: %d", length, dimension)
}

func ErrEmptyFleet() error {
	return fmt.Errorf("fleet manifest must contain at least one ship")
}
