package api

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	cerr "github.com/saeidalz13/battleship-core/internal/error"
	mb "github.com/saeidalz13/battleship-core/models/battleship"
	mc "github.com/saeidalz13/battleship-core/models/connection"
)

const (
	errMsgCreateGameFailed = "create game operation failed"
	errMsgStartGameFailed  = "start game operation failed"
	errMsgGameInfoFailed   = "game info operation failed"
)

// Request is one incoming frame of a session. The player behind every
// request is the user of the session, so a client can only act on the
// games it plays in.
type Request struct {
	payload []byte
}

func NewRequest(payload []byte) Request {
	return Request{payload: payload}
}

func decodePayload[T any](payload []byte) (T, error) {
	var msg mc.Message[T]
	if err := json.Unmarshal(payload, &msg); err != nil {
		var zero T
		return zero, err
	}
	return msg.Payload, nil
}

// HandleCreateGame creates a single player game against the computer.
// The returned game is nil when creation failed.
func (r Request) HandleCreateGame(gameManager mb.GameManager, session *mc.Session) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	req, err := decodePayload[mc.ReqCreateGame](r.payload)
	if err != nil {
		addMalformedErr(&resp, err)
		return nil, resp
	}

	var settings *mb.GameSettings
	if req.Settings != nil {
		settings, err = req.Settings.Build()
		if err != nil {
			addRespErr(&resp, err, errMsgCreateGameFailed)
			return nil, resp
		}
	}

	if req.NickName != "" {
		session.SetNickName(req.NickName)
	}
	user := session.User()

	game, err := gameManager.CreateGame(settings, user, req.GameDifficulty)
	if err != nil {
		addRespErr(&resp, err, errMsgCreateGameFailed)
		return nil, resp
	}

	resp.AddPayload(mc.RespCreateGame{GameId: game.Id, PlayerId: user.Id})
	return game, resp
}

func (r Request) HandlePositionShip(gameManager mb.GameManager, session *mc.Session) mc.Message[mc.RespPositionShip] {
	resp := mc.NewMessage[mc.RespPositionShip](mc.CodePositionShip)

	req, err := decodePayload[mc.ReqPositionShip](r.payload)
	if err != nil {
		addMalformedErr(&resp, err)
		return resp
	}

	result, err := gameManager.PositionShip(req.GameId, session.User().Id, req.ShipCode, req.SegmentCoordinates)
	if err != nil {
		addRespErr(&resp, err, cerr.ConstErrPositionFailed)
		return resp
	}

	resp.AddPayload(mc.RespPositionShip{Result: result})
	return resp
}

func (r Request) HandleStartGame(gameManager mb.GameManager, session *mc.Session) mc.Message[mc.RespStartGame] {
	resp := mc.NewMessage[mc.RespStartGame](mc.CodeStartGame)

	req, err := decodePayload[mc.ReqStartGame](r.payload)
	if err != nil {
		addMalformedErr(&resp, err)
		return resp
	}

	result, err := gameManager.StartGame(req.GameId, session.User().Id)
	if err != nil {
		addRespErr(&resp, err, errMsgStartGameFailed)
		return resp
	}

	resp.AddPayload(mc.RespStartGame{Result: result})
	return resp
}

// HandleShoot fires at the computer and answers with the shot result and
// the game as it looks after the computer played its turn.
func (r Request) HandleShoot(gameManager mb.GameManager, session *mc.Session) mc.Message[mc.RespShoot] {
	resp := mc.NewMessage[mc.RespShoot](mc.CodeShoot)

	req, err := decodePayload[mc.ReqShoot](r.payload)
	if err != nil {
		addMalformedErr(&resp, err)
		return resp
	}
	playerId := session.User().Id

	shotResult, err := gameManager.ShootAtOpponent(req.GameId, playerId, mb.NewCoordinate(req.Row, req.Column))
	if err != nil {
		addRespErr(&resp, err, cerr.ConstErrShootFailed)
		// a failed computer turn still leaves the player's shot on the grid
		if shotResult.ShotFired {
			gameInfo, infoErr := gameManager.GetGameInfoForPlayer(req.GameId, playerId)
			if infoErr != nil {
				log.Debug().Err(infoErr).Str("session", session.Id()).Msg("game info after failed shot")
			}
			resp.AddPayload(mc.RespShoot{ShotResult: shotResult, GameInfo: gameInfo})
		}
		return resp
	}

	gameInfo, err := gameManager.GetGameInfoForPlayer(req.GameId, playerId)
	if err != nil {
		addRespErr(&resp, err, cerr.ConstErrShootFailed)
		return resp
	}

	resp.AddPayload(mc.RespShoot{ShotResult: shotResult, GameInfo: gameInfo})
	return resp
}

func (r Request) HandleGameInfo(gameManager mb.GameManager, session *mc.Session) mc.Message[mb.GameInfo] {
	resp := mc.NewMessage[mb.GameInfo](mc.CodeGameInfo)

	req, err := decodePayload[mc.ReqGameInfo](r.payload)
	if err != nil {
		addMalformedErr(&resp, err)
		return resp
	}

	gameInfo, err := gameManager.GetGameInfoForPlayer(req.GameId, session.User().Id)
	if err != nil {
		log.Debug().Err(err).Str("session", session.Id()).Msg("game info refused")
		addRespErr(&resp, err, errMsgGameInfoFailed)
		return resp
	}

	resp.AddPayload(gameInfo)
	return resp
}
