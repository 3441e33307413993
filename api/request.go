package api

import (
	"context"
	"encoding/json"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mc "github.com/saeidalz13/seabattle/models/connection"
)

// Every incoming valid request will have this structure
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

// A new game replaces whatever game the session was playing.
func (r Request) HandleCreateGame(ctx context.Context, gameManager mb.GameManager, session *mc.Session) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	if previous := session.Game(); previous != nil {
		gameManager.TerminateGame(previous.Uuid())
		session.SetGame(nil)
	}

	game, err := gameManager.CreateGame(ctx)
	if err != nil {
		resp.Fail(err, "failed to create game")
		return nil, resp
	}
	session.SetGame(game)

	settings := gameManager.Settings()
	resp.AddPayload(mc.RespCreateGame{
		GameUuid:  game.Uuid(),
		Dimension: settings.Dimension,
		Fleet:     settings.Fleet,
		OwnGrid:   game.Player(mb.SideHuman).Board().View(),
	})
	return game, resp
}

func (r Request) sessionGame(gameManager mb.GameManager, session *mc.Session, gameUuid string) (*mb.Game, error) {
	if session.Game() == nil {
		return nil, cerr.ErrGameNotCreated()
	}

	game, err := gameManager.GetGame(gameUuid)
	if err != nil {
		return nil, err
	}
	if game != session.Game() {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	return game, nil
}

// HandleAttack fires the human's shot. When the shot passes the turn
// the computer plays right away; each of its shots comes back as a
// separate message in the order they were fired.
func (r Request) HandleAttack(ctx context.Context, gameManager mb.GameManager, session *mc.Session) (mc.Message[mc.RespAttack], []mc.Message[mc.RespAttack]) {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	var req mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.Fail(err, "invalid attack payload")
		return resp, nil
	}

	game, err := r.sessionGame(gameManager, session, req.Payload.GameUuid)
	if err != nil {
		resp.Fail(err, cerr.ConstErrAttackFailed)
		return resp, nil
	}
	if game.IsOver() {
		resp.Fail(cerr.ErrGameOver, cerr.ConstErrAttackFailed)
		return resp, nil
	}
	if game.ActiveSide() != mb.SideHuman {
		resp.Fail(cerr.ErrNotPlayerTurn(), cerr.ConstErrAttackFailed)
		return resp, nil
	}

	outcome, err := game.Fire(mb.NewCoordinates(req.Payload.Row, req.Payload.Col))
	if err != nil {
		resp.Fail(err, cerr.ConstErrAttackFailed)
		return resp, nil
	}
	if !outcome.Accepted() {
		resp.Fail(outcome.Err(), cerr.ConstErrAttackFailed)
		return resp, nil
	}
	resp.AddPayload(mc.NewRespAttack(game, outcome))

	return resp, r.playComputer(ctx, game)
}

func (r Request) playComputer(ctx context.Context, game *mb.Game) []mc.Message[mc.RespAttack] {
	var moves []mc.Message[mc.RespAttack]

	for !game.IsOver() && game.ActiveSide() == mb.SideComputer {
		move := mc.NewMessage[mc.RespAttack](mc.CodeComputerAttack)

		outcome, err := game.PlayTurn(ctx)
		if err != nil {
			move.Fail(err, "computer failed to play")
			return append(moves, move)
		}

		move.AddPayload(mc.NewRespAttack(game, outcome))
		moves = append(moves, move)
	}
	return moves
}

func (r Request) HandleBoardState(gameManager mb.GameManager, session *mc.Session) mc.Message[mc.RespBoardState] {
	resp := mc.NewMessage[mc.RespBoardState](mc.CodeBoardState)

	var req mc.Message[mc.ReqBoardState]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.Fail(err, "invalid board state payload")
		return resp
	}

	game, err := r.sessionGame(gameManager, session, req.Payload.GameUuid)
	if err != nil {
		resp.Fail(err, "board state unavailable")
		return resp
	}

	resp.AddPayload(mc.NewRespBoardState(game))
	return resp
}

func NewRespEndGame(game *mb.Game) mc.Message[mc.RespEndGame] {
	winner, _ := game.Winner()
	resp := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	resp.AddPayload(mc.RespEndGame{Winner: winner.String()})
	return resp
}
