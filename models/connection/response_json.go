package connection

import (
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid  string  `json:"game_uuid"`
	Dimension int     `json:"dimension"`
	Fleet     []int   `json:"fleet"`
	OwnGrid   mb.Grid `json:"own_grid"`
}

type RespAttack struct {
	Row                 int              `json:"row"`
	Col                 int              `json:"col"`
	Result              string           `json:"result"`
	IsTurn              bool             `json:"is_turn"`
	SunkenShipsHuman    int              `json:"sunken_ships_human"`
	SunkenShipsComputer int              `json:"sunken_ships_computer"`
	SunkShipCoords      []mb.Coordinates `json:"sunk_ship_coords,omitempty"`
}

type RespBoardState struct {
	OwnGrid             mb.Grid `json:"own_grid"`
	TargetGrid          mb.Grid `json:"target_grid"`
	SunkenShipsHuman    int     `json:"sunken_ships_human"`
	SunkenShipsComputer int     `json:"sunken_ships_computer"`
	IsTurn              bool    `json:"is_turn"`
}

type RespEndGame struct {
	Winner string `json:"winner"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}

// NewRespAttack describes an accepted shot from the point of view of
// the human, who holds the turn when isTurn is set.
func NewRespAttack(game *mb.Game, outcome mb.ShotOutcome) RespAttack {
	resp := RespAttack{
		Row:                 outcome.Target.Row,
		Col:                 outcome.Target.Col,
		Result:              outcome.Result.String(),
		IsTurn:              !game.IsOver() && game.ActiveSide() == mb.SideHuman,
		SunkenShipsHuman:    game.Player(mb.SideHuman).SunkenShips(),
		SunkenShipsComputer: game.Player(mb.SideComputer).SunkenShips(),
	}
	if outcome.SunkShip != nil {
		resp.SunkShipCoords = outcome.SunkShip.Cells()
	}
	return resp
}

func NewRespBoardState(game *mb.Game) RespBoardState {
	human := game.Player(mb.SideHuman)
	computer := game.Player(mb.SideComputer)

	return RespBoardState{
		OwnGrid:             human.Board().View(),
		TargetGrid:          computer.Board().View(),
		SunkenShipsHuman:    human.SunkenShips(),
		SunkenShipsComputer: computer.SunkenShips(),
		IsTurn:              !game.IsOver() && game.ActiveSide() == mb.SideHuman,
	}
}
