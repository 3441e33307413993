package connection

// Coordinates are 0-based.
type ReqAttack struct {
	GameUuid string `json:"game_uuid"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

type ReqBoardState struct {
	GameUuid string `json:"game_uuid"`
}
