package connection

import (
	mb "github.com/saeidalz13/battleship-core/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameId   string `json:"game_id"`
	PlayerId string `json:"player_id"`
}

type RespPositionShip struct {
	Result mb.Result `json:"result"`
}

type RespStartGame struct {
	Result mb.Result `json:"result"`
}

// RespShoot carries the outcome of the shot and the game as the shooter
// sees it afterwards, including the computer's answer.
type RespShoot struct {
	ShotResult mb.ShotResult `json:"shot_result"`
	GameInfo   mb.GameInfo   `json:"game_info"`
}

type RespErr struct {
	Code         uint8  `json:"code"`
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(code uint8, errorDetails, message string) *RespErr {
	return &RespErr{
		Code:         code,
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
