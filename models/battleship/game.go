package battleship

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	cerr "github.com/saeidalz13/battleship-core/internal/error"
)

const (
	misfireGameNotStarted = "the game has not started yet"
	misfireUnknownShooter = "the shooter is not a player of this game"
	misfireNoBombsLoaded  = "no bombs loaded, wait for your turn"
)

// Game holds two players that take turns shooting at each other once
// both fleets are positioned. It performs no locking.
type Game struct {
	Id       string
	Settings *GameSettings
	Player1  Player
	Player2  Player

	isStarted bool
	// turns each player started since it last moved a ship
	turnsSinceLastMove map[string]int
}

func newGame(settings *GameSettings, player1, player2 Player) *Game {
	return &Game{
		Id:                 uuid.NewString(),
		Settings:           settings,
		Player1:            player1,
		Player2:            player2,
		turnsSinceLastMove: make(map[string]int, 2),
	}
}

// NewSinglePlayerGame creates a game of user against a computer player
// that shoots with the given strategy and has its fleet positioned already.
func NewSinglePlayerGame(settings *GameSettings, user User, strategyKind StrategyKind) *Game {
	human := NewHumanPlayer(user, settings)
	computer := NewComputerPlayer(settings, NewShootingStrategy(strategyKind, settings, human.Grid()))

	return newGame(settings, human, computer)
}

func NewTwoPlayerGame(settings *GameSettings, user1, user2 User) *Game {
	return newGame(settings, NewHumanPlayer(user1, settings), NewHumanPlayer(user2, settings))
}

func (g *Game) IsStarted() bool {
	return g.isStarted
}

func (g *Game) IsReadyToStart() bool {
	return g.Player1.Fleet().IsPositionedOnGrid() && g.Player2.Fleet().IsPositionedOnGrid()
}

// Start fails while a fleet is not fully positioned or once the game is
// running. Player 1 gets the first turn.
func (g *Game) Start() Result {
	if g.isStarted {
		return NewFailureResult("the game has already started")
	}
	if !g.Player1.Fleet().IsPositionedOnGrid() {
		return NewFailureResult(fmt.Sprintf("the fleet of %s is not positioned", g.Player1.NickName()))
	}
	if !g.Player2.Fleet().IsPositionedOnGrid() {
		return NewFailureResult(fmt.Sprintf("the fleet of %s is not positioned", g.Player2.NickName()))
	}

	g.isStarted = true
	g.startTurn(g.Player1)

	log.Info().Str("game", g.Id).Msg("game started")
	return NewSuccessResult()
}

func (g *Game) GetPlayerById(playerId string) (Player, error) {
	switch playerId {
	case g.Player1.Id():
		return g.Player1, nil
	case g.Player2.Id():
		return g.Player2, nil
	}
	return nil, cerr.ErrPlayerNotExist(playerId)
}

func (g *Game) GetOpponent(player Player) Player {
	if player.Id() == g.Player1.Id() {
		return g.Player2
	}
	return g.Player1
}

// ShootAtOpponent fires one bomb of the shooter. A shot that cannot be
// fired is a misfire and leaves both grids untouched. When the shooter
// runs out of bombs the turn passes: a computer opponent plays its whole
// turn before this returns.
func (g *Game) ShootAtOpponent(shooterId string, target Coordinate) (ShotResult, error) {
	if !g.isStarted {
		return NewMisfireShotResult(misfireGameNotStarted), nil
	}

	shooter, err := g.GetPlayerById(shooterId)
	if err != nil {
		return NewMisfireShotResult(misfireUnknownShooter), nil
	}
	if !shooter.HasBombsLoaded() {
		return NewMisfireShotResult(misfireNoBombsLoaded), nil
	}

	opponent := g.GetOpponent(shooter)
	result, err := shooter.ShootAt(opponent, target)
	if err != nil {
		return ShotResult{}, err
	}

	if shooter.HasBombsLoaded() {
		return result, nil
	}

	computer, isComputer := opponent.(*ComputerPlayer)
	if !isComputer {
		g.startTurn(opponent)
		return result, nil
	}

	// the turn goes back to the human even when the computer could not
	// finish its own
	err = g.playComputerTurn(computer, shooter)
	g.startTurn(shooter)

	return result, err
}

func (g *Game) playComputerTurn(computer *ComputerPlayer, opponent Player) error {
	g.startTurn(computer)

	for computer.HasBombsLoaded() {
		if _, err := computer.ShootAutomatically(opponent); err != nil {
			log.Error().Err(err).Str("game", g.Id).Msg("computer turn failed")
			return err
		}
	}
	return nil
}

func (g *Game) startTurn(player Player) {
	player.ReloadBombs()
	g.turnsSinceLastMove[player.Id()]++
}

// MoveShip repositions an undamaged ship during a started game. Each
// player has to wait the configured number of turns between two moves.
func (g *Game) MoveShip(playerId string, kind ShipKind, segments Coordinates) Result {
	if !g.isStarted {
		return NewFailureResult("ships can only be moved once the game has started")
	}
	if !g.Settings.CanMoveUndamagedShipsDuringGame {
		return NewFailureResult("moving ships during the game is not allowed")
	}

	player, err := g.GetPlayerById(playerId)
	if err != nil {
		return NewFailureResult(err.Error())
	}

	ship := player.Fleet().Ship(kind)
	if ship == nil {
		return NewFailureResult(fmt.Sprintf("the fleet has no ship of kind %d", kind))
	}
	if ship.IsDamaged(player.Grid()) {
		return NewFailureResult(fmt.Sprintf("the %s is damaged and cannot be moved", kind.Name()))
	}

	waitTurns := g.Settings.NumberOfTurnsBeforeAShipCanBeMoved()
	if turns := g.turnsSinceLastMove[playerId]; turns < waitTurns {
		return NewFailureResult(fmt.Sprintf("a ship can be moved every %d turns, %d turns played since the last move", waitTurns, turns))
	}

	result := player.Fleet().TryMoveShipTo(kind, segments, player.Grid())
	if result.IsSuccess {
		g.turnsSinceLastMove[playerId] = 0
	}
	return result
}
