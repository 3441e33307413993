package battleship

import "strings"

type PositionState int

const (
	PositionStateEmpty PositionState = iota
	PositionStateOccupied
	PositionStateMiss
	PositionStateHit
)

var positionStateSymbols = map[PositionState]string{
	PositionStateEmpty:    "O",
	PositionStateOccupied: "■",
	PositionStateMiss:     "T",
	PositionStateHit:      "X",
}

func (p PositionState) String() string {
	if s, ok := positionStateSymbols[p]; ok {
		return s
	}
	return "?"
}

// Grid is indexed [row][col].
type Grid [][]PositionState

// Creates a new default grid
// All indexes are zero/PositionStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]PositionState, gridSize)
	}
	return grid
}

func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for i, row := range g {
		clone[i] = append([]PositionState(nil), row...)
	}
	return clone
}

// Rows renders each row as its cell symbols joined by sep.
func (g Grid) Rows(sep string) []string {
	rows := make([]string, len(g))
	symbols := make([]string, 0, len(g))
	for i, row := range g {
		symbols = symbols[:0]
		for _, state := range row {
			symbols = append(symbols, state.String())
		}
		rows[i] = strings.Join(symbols, sep)
	}
	return rows
}
