package connection

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	mb "github.com/saeidalz13/battleship-core/models/battleship"
)

const (
	maxWriteWsRetries uint8 = 2
	backOffFactor     uint8 = 2
)

type ConnectionHandler interface {
	reconnectionAfterAbnormalClosure(conn *websocket.Conn)
	handleReadFromConnErr(err error, retries uint8) uint8
	writeToConnWithRetry(msg any) error
	onConnErr(err error) uint8
}

// Session is one websocket client. The user identity is generated with
// the session and the session remembers the game the user plays.
type Session struct {
	id        string
	user      mb.User
	createdAt time.Time

	mu                     sync.Mutex
	conn                   *websocket.Conn
	gameId                 string
	reconnectionSignalChan chan struct{}
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:                     id,
		user:                   mb.NewUser(""),
		conn:                   conn,
		reconnectionSignalChan: make(chan struct{}),
		createdAt:              time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) User() mb.User {
	return s.user
}

func (s *Session) SetNickName(nickName string) {
	s.user.NickName = nickName
}

func (s *Session) Conn() *websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

func (s *Session) GameId() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameId
}

func (s *Session) SetGameId(gameId string) {
	s.mu.Lock()
	s.gameId = gameId
	s.mu.Unlock()
}

func (s *Session) reconnectionSignal() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reconnectionSignalChan
}

func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Warn().Err(err).Str("session", s.id).Msg("timeout error")
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Warn().Err(err).Str("session", s.id).Msg("high server load/traffic error")
		return ConnLoopRetry
	}

	// clients going to background close abnormally and come back
	if websocket.IsCloseError(err, websocket.CloseAbnormalClosure) {
		log.Warn().Err(err).Str("session", s.id).Msg("abnormal closure error")
		return ConnLoopAbnormalClosureRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		log.Info().Str("session", s.id).Msg("connection closed by client")
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		log.Error().Err(err).Str("session", s.id).Msg("critical error")
		return ConnLoopBreak
	}

	// binary or badly encoded frames mean the client is not ours
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		log.Warn().Err(err).Str("session", s.id).Msg("non-critical error")
		return ConnLoopBreak
	}

	log.Error().Err(err).Str("session", s.id).Msg("unexpected error")
	return ConnLoopBreak
}

// writeToConnWithRetry writes msg as JSON, retrying with a back off
// while the failure looks temporary.
func (s *Session) writeToConnWithRetry(msg any) error {
	var retries uint8

	for {
		conn := s.Conn()
		err := conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		switch action := s.onConnErr(err); action {
		case ConnLoopRetry:
			if retries >= maxWriteWsRetries {
				log.Error().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("max retries reached for writing to ws")
				return NewConnErr(ConnLoopBreak, err)
			}
			retries++
			log.Warn().Str("remote", conn.RemoteAddr().String()).Msgf("writing json failed to ws; retrying... (retry no. %d)", retries)
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)

		default:
			return NewConnErr(action, err)
		}
	}
}

// handleReadFromConnErr turns a read failure into the next loop action.
func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopAbnormalClosureRetry:
		return ConnLoopAbnormalClosureRetry

	case ConnLoopRetry:
		if retries >= maxWriteWsRetries {
			return ConnLoopBreak
		}
		log.Warn().Str("session", s.id).Msgf("failed to read from ws conn; retrying... (retry no. %d)", retries)
		time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
		return ConnLoopContinue

	default:
		log.Info().Err(err).Str("session", s.id).Msg("break ws conn loop")
		return ConnLoopBreak
	}
}

func (s *Session) reconnectionAfterAbnormalClosure(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	close(s.reconnectionSignalChan)
	s.conn = conn
	s.reconnectionSignalChan = make(chan struct{})
}

var _ ConnectionHandler = (*Session)(nil)
