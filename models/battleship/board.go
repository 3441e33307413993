package battleship

import (
	"sort"

	"github.com/dolthub/swiss"
)

// Board is one side's sea. Blocked holds every coordinate that is
// either taken by a ship, adjacent to one, or already shot at. During
// generation it enforces the no-touch rule; Begin clears it so that
// afterwards it only records shots and revealed water.
type Board struct {
	dimension   int
	hidden      bool
	grid        Grid
	ships       []*Ship
	blocked     *swiss.Map[Coordinates, struct{}]
	sunkenShips int
}

func NewBoard(dimension int, hidden bool) *Board {
	return &Board{
		dimension: dimension,
		hidden:    hidden,
		grid:      NewGrid(dimension),
		ships:     make([]*Ship, 0),
		blocked:   swiss.NewMap[Coordinates, struct{}](uint32(dimension * dimension)),
	}
}

func (b *Board) Dimension() int {
	return b.dimension
}

func (b *Board) IsHidden() bool {
	return b.hidden
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

func (b *Board) SunkenShips() int {
	return b.sunkenShips
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

func (b *Board) IsOutOfBounds(c Coordinates) bool {
	return c.Row < 0 || c.Row >= b.dimension || c.Col < 0 || c.Col >= b.dimension
}

func (b *Board) IsBlocked(c Coordinates) bool {
	return b.blocked.Has(c)
}

// Blocked returns the blocked coordinates in row-major order.
func (b *Board) Blocked() []Coordinates {
	out := make([]Coordinates, 0, b.blocked.Count())
	b.blocked.Iter(func(c Coordinates, _ struct{}) bool {
		out = append(out, c)
		return false
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func (b *Board) State(c Coordinates) PositionState {
	return b.grid[c.Row][c.Col]
}

// Grid is the full state of the board, ships included.
func (b *Board) Grid() Grid {
	return b.grid.Clone()
}

// View is what an observer may see: ships are masked out
// of hidden boards unless they were hit.
func (b *Board) View() Grid {
	view := b.grid.Clone()
	if !b.hidden {
		return view
	}
	for _, row := range view {
		for i, state := range row {
			if state == PositionStateOccupied {
				row[i] = PositionStateEmpty
			}
		}
	}
	return view
}

// AddShip validates every cell before touching the board, so a
// failed placement leaves it exactly as it was.
func (b *Board) AddShip(ship *Ship) PlacementStatus {
	cells := ship.Cells()
	for _, c := range cells {
		if b.IsOutOfBounds(c) {
			return PlacementOutOfBounds
		}
		if b.blocked.Has(c) {
			return PlacementCollision
		}
	}

	for _, c := range cells {
		b.grid[c.Row][c.Col] = PositionStateOccupied
		b.blocked.Put(c, struct{}{})
	}
	b.ships = append(b.ships, ship)
	b.markContour(ship, false)

	return PlacementOK
}

// markContour blocks the halo around a ship. With reveal the newly
// blocked water is also shown as searched.
func (b *Board) markContour(ship *Ship, reveal bool) {
	for _, c := range ship.Cells() {
		for _, offset := range contourOffsets {
			neighbour := c.shift(offset[0], offset[1])
			if b.IsOutOfBounds(neighbour) || b.blocked.Has(neighbour) {
				continue
			}
			if reveal {
				b.grid[neighbour.Row][neighbour.Col] = PositionStateMiss
			}
			b.blocked.Put(neighbour, struct{}{})
		}
	}
}

// Begin drops the placement markers. Call it once, after the last
// ship is placed and before the first shot.
func (b *Board) Begin() {
	b.blocked.Clear()
}

func (b *Board) Shoot(c Coordinates) ShotOutcome {
	outcome := ShotOutcome{Target: c, dimension: b.dimension}

	if b.IsOutOfBounds(c) {
		outcome.Status = ShotOutOfBounds
		return outcome
	}
	if b.blocked.Has(c) {
		outcome.Status = ShotAlreadyTargeted
		return outcome
	}
	b.blocked.Put(c, struct{}{})

	for _, ship := range b.ships {
		if !ship.Covers(c) {
			continue
		}

		ship.gotHit()
		b.grid[c.Row][c.Col] = PositionStateHit
		if ship.IsSunk() {
			b.sunkenShips++
			b.markContour(ship, true)
			outcome.Result = ShotResultSunk
			outcome.SunkShip = ship
			return outcome
		}
		outcome.Result = ShotResultHit
		return outcome
	}

	b.grid[c.Row][c.Col] = PositionStateMiss
	outcome.Result = ShotResultMiss
	return outcome
}

// IsFleetDestroyed reports whether every ship on the board is sunk.
func (b *Board) IsFleetDestroyed() bool {
	return len(b.ships) > 0 && b.sunkenShips == len(b.ships)
}
