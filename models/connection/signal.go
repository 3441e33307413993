package connection

const (
	CodeSessionID uint8 = iota
	CodeCreateGame
	CodeAttack

	// Sent once per computer shot while the
	// computer holds the turn
	CodeComputerAttack
	CodeBoardState
	CodeEndGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
