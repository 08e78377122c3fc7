package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/saeidalz13/battleship-core/db/sqlc"
	mb "github.com/saeidalz13/battleship-core/models/battleship"
	mc "github.com/saeidalz13/battleship-core/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{
		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	loopbackIpNet = net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	analytics      *sqlc.AnalyticsManager
	ipnet          net.IPNet
}

// NewRequestProcessor wires the managers behind the websocket endpoint.
// A nil querier turns analytics off.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	q sqlc.Querier,
) RequestProcessor {
	ipnet, err := lookupServerIpNet()
	if err != nil {
		log.Warn().Err(err).Msg("server ip not found, analytics keyed by loopback")
		ipnet = loopbackIpNet
	}

	return RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		analytics:      sqlc.NewDbManager(q, ipnet).Analytics,
		ipnet:          ipnet,
	}
}

// lookupServerIpNet returns the first IPv4 address of an interface that
// is up and not a loopback.
func lookupServerIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip.To4(), Mask: net.CIDRMask(32, 32)}, nil
			}
		}
	}

	return net.IPNet{}, errors.New("no IPv4 address on any interface that is up")
}

// ReportAnalytics logs the analytics counters of this server and returns
// them. Without analytics it reports zeros and logs nothing.
func (rp RequestProcessor) ReportAnalytics(ctx context.Context) (sqlc.GetServerAnalyticsRow, error) {
	if !rp.analytics.IsEnabled() {
		return sqlc.GetServerAnalyticsRow{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	row, err := rp.analytics.GetServerAnalytics(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read analytics")
		return sqlc.GetServerAnalyticsRow{}, err
	}

	log.Info().
		Int64("games_created", row.GamesCreated).
		Int64("games_started", row.GamesStarted).
		Int64("shots_fired", row.ShotsFired).
		Msg("server analytics")
	return row, nil
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Error().Err(err).Msg("could not open websocket connection")
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		// the session loop picks the new connection up
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			log.Info().Err(err).Msg("reconnection refused")
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
		}
	}
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if gameId := session.GameId(); gameId != "" {
			rp.gameManager.TerminateGame(gameId)
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
		log.Info().Str("session", sessionId).Msg("session ended")
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp); err != nil {
		return
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// retries and the grace period are already spent
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError(mc.ErrCodeBadRequest, err.Error(), errMsgMalformed)
			if err := rp.sessionManager.WriteToSessionConn(session, msg); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		var respMsg any
		req := NewRequest(payload)

		switch code {
		case mc.CodeCreateGame:
			// one game per session
			if previous := session.GameId(); previous != "" {
				rp.gameManager.TerminateGame(previous)
				session.SetGameId("")
			}

			game, msg := req.HandleCreateGame(rp.gameManager, session)
			if game != nil {
				session.SetGameId(game.Id)
				rp.analytics.RecordGameCreated()
			}
			respMsg = msg

		case mc.CodePositionShip:
			respMsg = req.HandlePositionShip(rp.gameManager, session)

		case mc.CodeStartGame:
			msg := req.HandleStartGame(rp.gameManager, session)
			if msg.Error == nil && msg.Payload.Result.IsSuccess {
				rp.analytics.RecordGameStarted()
			}
			respMsg = msg

		case mc.CodeShoot:
			msg := req.HandleShoot(rp.gameManager, session)
			if msg.Payload.ShotResult.ShotFired {
				rp.analytics.RecordShotFired()
			}
			respMsg = msg

		case mc.CodeGameInfo:
			respMsg = req.HandleGameInfo(rp.gameManager, session)

		default:
			msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			msg.AddError(mc.ErrCodeBadRequest, "", "invalid code in the incoming payload")
			respMsg = msg
		}

		if err := rp.sessionManager.WriteToSessionConn(session, respMsg); err != nil {
			break sessionLoop
		}
	}
}
