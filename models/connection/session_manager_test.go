package connection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	cerr "github.com/saeidalz13/battleship-core/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConnPair returns the server and client ends of a websocket.
func newConnPair(t *testing.T) (*websocket.Conn, *websocket.Conn) {
	t.Helper()
	serverConns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(server.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case conn := <-serverConns:
		t.Cleanup(func() { conn.Close() })
		return conn, client
	case <-time.After(5 * time.Second):
		t.Fatal("server side of the websocket never showed up")
		return nil, nil
	}
}

func TestBattleshipSessionManagerLifecycle(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	serverConn, _ := newConnPair(t)

	session := bsm.GenerateNewSession(serverConn)
	require.NotEmpty(t, session.Id())
	assert.NotEmpty(t, session.User().Id)
	assert.Equal(t, 1, bsm.CountSessions())

	found, err := bsm.FindSession(session.Id())
	require.NoError(t, err)
	assert.Same(t, session, found)

	bsm.TerminateSession(session.Id())
	_, err = bsm.FindSession(session.Id())
	require.ErrorIs(t, err, cerr.ErrSessionNotExists)
	assert.Zero(t, bsm.CountSessions())
}

func TestBattleshipSessionManagerWriteAndRead(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	serverConn, client := newConnPair(t)
	session := bsm.GenerateNewSession(serverConn)

	msg := NewMessage[RespSessionId](CodeSessionID)
	msg.AddPayload(RespSessionId{SessionID: session.Id()})
	require.NoError(t, bsm.WriteToSessionConn(session, msg))

	var received Message[RespSessionId]
	require.NoError(t, client.ReadJSON(&received))
	assert.Equal(t, CodeSessionID, received.Code)
	assert.Equal(t, session.Id(), received.Payload.SessionID)
	assert.Nil(t, received.Error)

	require.NoError(t, client.WriteMessage(websocket.TextMessage, []byte(`{"code":5}`)))
	_, payload, err := bsm.ReadFromSessionConn(session)
	require.NoError(t, err)
	code, err := bsm.FetchCodeFromMsg(payload)
	require.NoError(t, err)
	assert.Equal(t, CodeShoot, code)
}

func TestBattleshipSessionManagerReadAfterClientClosed(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	serverConn, client := newConnPair(t)
	session := bsm.GenerateNewSession(serverConn)

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
	require.NoError(t, client.WriteMessage(websocket.CloseMessage, closeMsg))

	_, _, err := bsm.ReadFromSessionConn(session)
	require.Error(t, err)
}

func TestFetchCodeFromMsg(t *testing.T) {
	bsm := NewBattleshipSessionManager()

	tests := []struct {
		name        string
		payload     string
		code        uint8
		expectError bool
	}{
		{name: "create game", payload: `{"code":2,"payload":{"nickname":"saeid"}}`, code: CodeCreateGame},
		{name: "code zero is present", payload: `{"code":0}`, code: CodeSessionID},
		{name: "missing code", payload: `{"payload":{}}`, expectError: true},
		{name: "not json", payload: `hello`, expectError: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, err := bsm.FetchCodeFromMsg([]byte(test.payload))
			if test.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.code, code)
		})
	}
}

func TestHandleAbnormalClosureSession(t *testing.T) {
	t.Run("session without a game ends at once", func(t *testing.T) {
		bsm := NewBattleshipSessionManager()
		serverConn, _ := newConnPair(t)
		session := bsm.GenerateNewSession(serverConn)

		err := bsm.HandleAbnormalClosureSession(session)

		var connErr ConnErr
		require.ErrorAs(t, err, &connErr)
		assert.Equal(t, ConnLoopBreak, connErr.Action())
	})

	t.Run("grace period runs out", func(t *testing.T) {
		bsm := NewBattleshipSessionManager(WithGracePeriod(50 * time.Millisecond))
		serverConn, _ := newConnPair(t)
		session := bsm.GenerateNewSession(serverConn)
		session.SetGameId("game")

		require.Error(t, bsm.HandleAbnormalClosureSession(session))
	})

	t.Run("client reconnects in time", func(t *testing.T) {
		bsm := NewBattleshipSessionManager(WithGracePeriod(5 * time.Second))
		serverConn, _ := newConnPair(t)
		newServerConn, _ := newConnPair(t)
		session := bsm.GenerateNewSession(serverConn)
		session.SetGameId("game")

		done := make(chan error, 1)
		go func() { done <- bsm.HandleAbnormalClosureSession(session) }()

		// give the session time to start waiting
		time.Sleep(50 * time.Millisecond)
		require.NoError(t, bsm.ReconnectSession(session.Id(), newServerConn))

		select {
		case err := <-done:
			require.NoError(t, err)
			assert.Same(t, newServerConn, session.Conn())
		case <-time.After(2 * time.Second):
			t.Fatal("reconnection did not wake the session up")
		}
	})

	t.Run("unknown session cannot reconnect", func(t *testing.T) {
		bsm := NewBattleshipSessionManager()
		serverConn, _ := newConnPair(t)

		require.ErrorIs(t, bsm.ReconnectSession("missing", serverConn), cerr.ErrSessionNotExists)
	})
}

func TestCleanupPeriodically(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithCleanupInterval(20 * time.Millisecond))
	serverConn, _ := newConnPair(t)
	bsm.GenerateNewSession(serverConn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bsm.CleanupPeriodically(ctx)

	require.Eventually(t, func() bool { return bsm.CountSessions() == 0 }, 2*time.Second, 10*time.Millisecond)
}
