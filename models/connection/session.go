package connection

import (
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const (
	maxWsRetries  uint8 = 2
	backOffFactor uint8 = 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	writeToConnWithRetry(msg interface{}, msgType uint8) error
	handleReadFromConnErr(err error, retries uint8) uint8
	onConnErr(err error) uint8
}

// Session is one websocket client playing one game at a time.
type Session struct {
	id        string
	conn      *websocket.Conn
	game      *mb.Game
	createdAt time.Time
	backOff   time.Duration

	// unix nanos of the last frame read from the client
	lastActive atomic.Int64
}

var _ ConnectionHandler = (*Session)(nil)

func NewSession(id string, conn *websocket.Conn) *Session {
	session := &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
		backOff:   time.Second,
	}
	session.touch()
	return session
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) Game() *mb.Game {
	return s.game
}

func (s *Session) SetGame(game *mb.Game) {
	s.game = game
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// close ends the connection; the read loop of the session sees the
// error and tears the session down.
func (s *Session) close() {
	if s.conn != nil {
		s.conn.Close()
	}
}

func (s *Session) remoteAddr() string {
	if s.conn == nil {
		return ""
	}
	return s.conn.RemoteAddr().String()
}

func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Warn("timeout error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Warn("high server load/traffic error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure, websocket.CloseNoStatusReceived) {
		log.Info("connection closed", "session", s.id, "err", err)
		return ConnLoopBreak
	}

	log.Error("unexpected connection error", "session", s.id, "err", err)
	return ConnLoopBreak
}

// Writes to the connection of the session, retrying with a
// linear back off when the failure looks transient.
func (s *Session) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	var retries uint8

	for {
		var err error

		switch msgType {
		case MessageTypeJSON:
			err = s.conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = s.conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			return nil
		}

		if s.onConnErr(err) == ConnLoopRetry && retries < maxWsRetries {
			retries++
			log.Warn("writing to ws failed; retrying", "remote", s.remoteAddr(), "retry", retries)
			time.Sleep(time.Duration(retries*backOffFactor) * s.backOff)
			continue
		}
		return NewConnErr(ConnLoopBreak).AddDesc("write to ws failed").Wrap(err)
	}
}

// Decides whether a failed read is worth another try.
func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	if s.onConnErr(err) == ConnLoopRetry && retries < maxWsRetries {
		log.Warn("failed to read from ws conn; retrying", "remote", s.remoteAddr(), "retry", retries+1)
		time.Sleep(time.Duration((retries+1)*backOffFactor) * s.backOff)
		return ConnLoopContinue
	}
	return ConnLoopBreak
}
