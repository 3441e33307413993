package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/saeidalz13/seabattle/db/sqlc"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mc "github.com/saeidalz13/seabattle/models/connection"
)

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// a board of the default size fits easily
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	analytics      *sqlc.AnalyticsManager
}

// analytics may be nil.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	analytics *sqlc.AnalyticsManager,
) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		analytics:      analytics,
	}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("websocket upgrade failed", "err", err)
		return
	}

	log.Info("a new connection established", "remote", conn.RemoteAddr().String())
	rp.processSessionRequests(r.Context(), rp.sessionManager.GenerateNewSession(conn))
}

func (rp RequestProcessor) processSessionRequests(ctx context.Context, session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if game := session.Game(); game != nil {
			rp.gameManager.TerminateGame(game.Uuid())
		}
		session.Conn().Close()
		rp.sessionManager.TerminateSession(sessionId)
		log.Info("session terminated", "session", sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// then something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		code, err := mc.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewSignalErrMessage(mc.CodeSignalAbsent, "incoming req payload must contain 'code' field")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {

		case mc.CodeCreateGame:
			game, respMsg := NewRequest(payload).HandleCreateGame(ctx, rp.gameManager, session)
			if game != nil {
				if err := rp.analytics.RecordGameCreated(ctx); err != nil {
					// for now not killing the game for it
					log.Warn("failed to record created game", "err", err)
				}
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// The human's shot, followed by every computer shot up to
		// the point the turn comes back or the game ends
		case mc.CodeAttack:
			respMsg, computerMoves := NewRequest(payload).HandleAttack(ctx, rp.gameManager, session)

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			for _, move := range computerMoves {
				if err := rp.sessionManager.WriteToSessionConn(session, move, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

			game := session.Game()
			if respMsg.Failed() || game == nil || !game.IsOver() {
				continue sessionLoop
			}

			winner, _ := game.Winner()
			if err := rp.analytics.RecordGameFinished(ctx, winner == mb.SideHuman); err != nil {
				log.Warn("failed to record finished game", "err", err)
			}
			log.Info("game over", "game", game.Uuid(), "winner", winner)

			if err := rp.sessionManager.WriteToSessionConn(session, NewRespEndGame(game), mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeBoardState:
			respMsg := NewRequest(payload).HandleBoardState(rp.gameManager, session)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewSignalErrMessage(mc.CodeInvalidSignal, "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}
