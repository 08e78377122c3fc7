package connection

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	cerr "github.com/saeidalz13/battleship-core/internal/error"
)

const (
	defaultCleanupInterval = time.Minute * 20
	defaultGracePeriod     = time.Minute * 2
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically(ctx context.Context)

	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	ReconnectSession(sessionId string, conn *websocket.Conn) error
	HandleAbnormalClosureSession(session *Session) error
	CountSessions() int

	WriteToSessionConn(session *Session, msg any) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	FetchCodeFromMsg(payload []byte) (uint8, error)
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	gracePeriod     time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

type SessionManagerOption func(*BattleshipSessionManager)

// WithCleanupInterval sets how often stale sessions are dropped and how
// old a session must be to count as stale.
func WithCleanupInterval(interval time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.cleanupInterval = interval
	}
}

// WithGracePeriod sets how long an abnormally closed session waits for
// its client to reconnect.
func WithGracePeriod(gracePeriod time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.gracePeriod = gracePeriod
	}
}

func NewBattleshipSessionManager(opts ...SessionManagerOption) *BattleshipSessionManager {
	initMapSize := 10

	bsm := &BattleshipSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: defaultCleanupInterval,
		gracePeriod:     defaultGracePeriod,
	}
	for _, opt := range opts {
		opt(bsm)
	}
	return bsm
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

// GenerateNewSession registers a session under a URL safe id so clients
// can pass it back as a query parameter on reconnection.
func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.NewString()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	log.Info().Str("session", sessionId).Str("remote", conn.RemoteAddr().String()).Msg("new session")
	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) CountSessions() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

// ReconnectSession hands the new connection to the session and wakes up
// its loop if it is waiting out the grace period.
func (bsm *BattleshipSessionManager) ReconnectSession(sessionId string, conn *websocket.Conn) error {
	session, err := bsm.FindSession(sessionId)
	if err != nil {
		return err
	}

	session.reconnectionAfterAbnormalClosure(conn)
	log.Info().Str("session", sessionId).Msg("session reconnected")
	return nil
}

// CleanupPeriodically drops sessions that outlived the cleanup interval
// so no dangling connection stays around. It returns once ctx is done.
func (bsm *BattleshipSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bsm.removeStaleSessions()
		}
	}
}

func (bsm *BattleshipSessionManager) removeStaleSessions() {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	for id, session := range bsm.sessions {
		if time.Since(session.createdAt) > bsm.cleanupInterval {
			delete(bsm.sessions, id)
			log.Info().Str("session", id).Msg("removed stale session")
		}
	}
}

// HandleAbnormalClosureSession keeps a session with a game alive for the
// grace period. A nil error means the client reconnected in time.
func (bsm *BattleshipSessionManager) HandleAbnormalClosureSession(s *Session) error {
	if s.GameId() == "" {
		return NewConnErr(ConnLoopBreak, cerr.ErrSessionWithoutGame(s.id))
	}

	timer := time.NewTimer(bsm.gracePeriod)
	defer timer.Stop()

	select {
	case <-timer.C:
		log.Info().Str("session", s.id).Msg("grace period is over, session terminated")
		return NewConnErr(ConnLoopBreak, cerr.ErrGracePeriodOver(s.id))

	case <-s.reconnectionSignal():
		log.Info().Str("session", s.id).Msg("player reconnected")
		return nil
	}
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg any) error {
	err := session.writeToConnWithRetry(msg)
	if err == nil {
		return nil
	}

	connErr, ok := err.(ConnErr)
	if !ok || connErr.Action() != ConnLoopAbnormalClosureRetry {
		return err
	}
	if err := bsm.HandleAbnormalClosureSession(session); err != nil {
		return err
	}
	return session.writeToConnWithRetry(msg)
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.Conn().ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := bsm.HandleAbnormalClosureSession(session); err != nil {
				return -1, []byte{}, err
			}
			retries = 0

		default:
			return -1, []byte{}, err
		}
	}
}

// FetchCodeFromMsg reads the code of a request. A payload without a code
// field is an error.
func (bsm *BattleshipSessionManager) FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal struct {
		Code *uint8 `json:"code"`
	}

	if err := json.Unmarshal(payload, &signal); err != nil {
		return 0, err
	}
	if signal.Code == nil {
		return 0, cerr.ErrSignalAbsent()
	}
	return *signal.Code, nil
}
