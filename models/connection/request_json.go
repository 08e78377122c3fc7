package connection

import (
	mb "github.com/saeidalz13/battleship-core/models/battleship"
)

// Settings may be omitted, the defaults are used then. A missing
// difficulty is the normal one.
type ReqCreateGame struct {
	Settings       *mb.GameSettingsInput `json:"settings,omitempty"`
	NickName       string                `json:"nickname"`
	GameDifficulty mb.GameDifficulty     `json:"game_difficulty"`
}

type ReqPositionShip struct {
	GameId             string         `json:"game_id"`
	ShipCode           string         `json:"ship_code"`
	SegmentCoordinates mb.Coordinates `json:"segment_coordinates"`
}

type ReqStartGame struct {
	GameId string `json:"game_id"`
}

type ReqShoot struct {
	GameId string `json:"game_id"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

type ReqGameInfo struct {
	GameId string `json:"game_id"`
}
