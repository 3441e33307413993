package battleship

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

type Ship struct {
	bow         Coordinates
	length      int
	orientation Orientation
	lives       int
}

func NewShip(bow Coordinates, length int, orientation Orientation) *Ship {
	return &Ship{
		bow:         bow,
		length:      length,
		orientation: orientation,
		lives:       length,
	}
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Lives() int {
	return sh.lives
}

// Cells returns the coordinates the ship covers, bow first.
// Horizontal ships grow along the columns, vertical ones along the rows.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		if sh.orientation == OrientationVertical {
			cells = append(cells, sh.bow.shift(i, 0))
		} else {
			cells = append(cells, sh.bow.shift(0, i))
		}
	}
	return cells
}

func (sh *Ship) Covers(c Coordinates) bool {
	for _, cell := range sh.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

func (sh *Ship) gotHit() {
	if sh.lives > 0 {
		sh.lives--
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.lives == 0
}
