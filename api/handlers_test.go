package api

import (
	"encoding/json"
	"testing"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
	mb "github.com/saeidalz13/battleship-core/models/battleship"
	mc "github.com/saeidalz13/battleship-core/models/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shootingGameManager answers shots with a fixed result and error.
type shootingGameManager struct {
	mb.GameManager
	result mb.ShotResult
	err    error
}

func (gm shootingGameManager) ShootAtOpponent(gameId, _ string, _ mb.Coordinate) (mb.ShotResult, error) {
	return gm.result, gm.err
}

func (gm shootingGameManager) GetGameInfoForPlayer(gameId, _ string) (mb.GameInfo, error) {
	return mb.GameInfo{Id: gameId, HasBombsLoaded: true}, nil
}

func newShootRequest(t *testing.T, req mc.ReqShoot) Request {
	t.Helper()
	msg := mc.NewMessage[mc.ReqShoot](mc.CodeShoot)
	msg.AddPayload(req)
	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	return NewRequest(payload)
}

func TestHandleShootErrors(t *testing.T) {
	tests := []struct {
		name        string
		gameManager shootingGameManager
		errCode     uint8
		shotFired   bool
	}{
		{
			name: "computer turn fails after the player fired",
			gameManager: shootingGameManager{
				result: mb.ShotResult{ShotFired: true, Hit: true},
				err:    cerr.ErrComputerShot(cerr.ErrAllSquaresShot(mb.GridSizeDefault)),
			},
			errCode:   mc.ErrCodeInternal,
			shotFired: true,
		},
		{
			name: "shot refused before firing",
			gameManager: shootingGameManager{
				err: cerr.ErrRowOrColumnOutOfGridBound(3, 10, mb.GridSizeDefault),
			},
			errCode: mc.ErrCodeOutOfBounds,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			session := mc.NewSession("session", nil)
			req := newShootRequest(t, mc.ReqShoot{GameId: "game", Row: 3, Column: 4})

			resp := req.HandleShoot(test.gameManager, session)

			require.NotNil(t, resp.Error)
			assert.Equal(t, test.errCode, resp.Error.Code)
			assert.Equal(t, test.shotFired, resp.Payload.ShotResult.ShotFired)
			if test.shotFired {
				assert.True(t, resp.Payload.ShotResult.Hit)
				assert.Equal(t, "game", resp.Payload.GameInfo.Id)
				assert.True(t, resp.Payload.GameInfo.HasBombsLoaded)
			} else {
				assert.Empty(t, resp.Payload.GameInfo.Id)
			}
		})
	}
}
