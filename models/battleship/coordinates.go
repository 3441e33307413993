package battleship

// Coordinates is a value type; compare with ==.
type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

func (c Coordinates) shift(dRow, dCol int) Coordinates {
	return Coordinates{Row: c.Row + dRow, Col: c.Col + dCol}
}

// The cell itself and its eight neighbours.
var contourOffsets = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
