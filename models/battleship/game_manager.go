package battleship

import (
	"sync"

	"github.com/rs/zerolog/log"
	cerr "github.com/saeidalz13/battleship-core/internal/error"
)

type GameManager interface {
	CreateGame(settings *GameSettings, user User, difficulty GameDifficulty) (*Game, error)
	StartGame(gameId, playerId string) (Result, error)
	FetchGame(gameId string) (*Game, error)
	GetGameInfoForPlayer(gameId, playerId string) (GameInfo, error)
	PositionShip(gameId, playerId, shipCode string, segments Coordinates) (Result, error)
	ShootAtOpponent(gameId, shooterId string, target Coordinate) (ShotResult, error)
	TerminateGame(gameId string)
}

// managedGame serializes every operation on one game.
type managedGame struct {
	mu   sync.Mutex
	game *Game
}

type BattleshipGameManager struct {
	games map[string]*managedGame
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*managedGame, 10),
	}
}

// CreateGame stores a new single player game against a computer playing
// at difficulty. Nil settings fall back to the defaults.
func (bgm *BattleshipGameManager) CreateGame(settings *GameSettings, user User, difficulty GameDifficulty) (*Game, error) {
	if settings == nil {
		settings = NewGameSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !difficulty.IsValid() {
		return nil, cerr.ErrInvalidGameDifficulty(uint8(difficulty))
	}
	game := NewSinglePlayerGame(settings, user, difficulty.StrategyKind())

	bgm.mu.Lock()
	bgm.games[game.Id] = &managedGame{game: game}
	bgm.mu.Unlock()

	log.Info().Str("game", game.Id).Str("player", user.Id).Msg("game created")
	return game, nil
}

// FetchGame returns the stored game without taking its lock. The game
// must only be read, and only while no manager operation runs on it;
// every change goes through the other GameManager methods.
func (bgm *BattleshipGameManager) FetchGame(gameId string) (*Game, error) {
	mg, err := bgm.lookup(gameId)
	if err != nil {
		return nil, err
	}
	return mg.game, nil
}

func (bgm *BattleshipGameManager) StartGame(gameId, playerId string) (Result, error) {
	var result Result
	err := bgm.withPlayer(gameId, playerId, func(game *Game, _ Player) error {
		result = game.Start()
		return nil
	})
	return result, err
}

func (bgm *BattleshipGameManager) GetGameInfoForPlayer(gameId, playerId string) (GameInfo, error) {
	var info GameInfo
	err := bgm.withGame(gameId, func(game *Game) error {
		var err error
		info, err = NewGameInfo(game, playerId)
		return err
	})
	return info, err
}

// PositionShip places a ship before the game starts. Once started, the
// move has to satisfy the rules for moving ships during a game.
func (bgm *BattleshipGameManager) PositionShip(gameId, playerId, shipCode string, segments Coordinates) (Result, error) {
	kind, err := ShipKindFromCode(shipCode)
	if err != nil {
		return Result{}, err
	}

	var result Result
	err = bgm.withPlayer(gameId, playerId, func(game *Game, player Player) error {
		if game.IsStarted() {
			result = game.MoveShip(playerId, kind, segments)
			return nil
		}
		result = player.Fleet().TryMoveShipTo(kind, segments, player.Grid())
		return nil
	})
	return result, err
}

func (bgm *BattleshipGameManager) ShootAtOpponent(gameId, shooterId string, target Coordinate) (ShotResult, error) {
	var result ShotResult
	err := bgm.withGame(gameId, func(game *Game) error {
		var err error
		result, err = game.ShootAtOpponent(shooterId, target)
		return err
	})
	return result, err
}

// TerminateGame forgets the game. Unknown ids are ignored.
func (bgm *BattleshipGameManager) TerminateGame(gameId string) {
	bgm.mu.Lock()
	_, prs := bgm.games[gameId]
	delete(bgm.games, gameId)
	bgm.mu.Unlock()

	if prs {
		log.Info().Str("game", gameId).Msg("game terminated")
	}
}

func (bgm *BattleshipGameManager) CountGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}

func (bgm *BattleshipGameManager) lookup(gameId string) (*managedGame, error) {
	bgm.mu.RLock()
	mg, prs := bgm.games[gameId]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameId)
	}
	return mg, nil
}

func (bgm *BattleshipGameManager) withGame(gameId string, fn func(*Game) error) error {
	mg, err := bgm.lookup(gameId)
	if err != nil {
		return err
	}

	mg.mu.Lock()
	defer mg.mu.Unlock()
	return fn(mg.game)
}

func (bgm *BattleshipGameManager) withPlayer(gameId, playerId string, fn func(*Game, Player) error) error {
	return bgm.withGame(gameId, func(game *Game) error {
		player, err := game.GetPlayerById(playerId)
		if err != nil {
			return err
		}
		return fn(game, player)
	})
}
