package battleship

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	cerr "github.com/saeidalz13/battleship-core/internal/error"
)

const ComputerNickName = "Computer"

// User is the identity a human player is created from.
type User struct {
	Id       string `json:"id"`
	NickName string `json:"nickname"`
}

func NewUser(nickName string) User {
	return User{Id: uuid.NewString(), NickName: nickName}
}

type Player interface {
	Id() string
	NickName() string
	Grid() *Grid
	Fleet() *Fleet
	HasBombsLoaded() bool
	ReloadBombs()
	ShootAt(opponent Player, target Coordinate) (ShotResult, error)
}

// player carries what human and computer players have in common.
type player struct {
	id          string
	nickName    string
	settings    *GameSettings
	grid        *Grid
	fleet       *Fleet
	bombsLoaded int
}

func newPlayer(id, nickName string, settings *GameSettings) player {
	return player{
		id:       id,
		nickName: nickName,
		settings: settings,
		grid:     NewGrid(settings.GridSize()),
		fleet:    NewFleet(settings.AllowDeformedShips),
	}
}

func (p *player) Id() string           { return p.id }
func (p *player) NickName() string     { return p.nickName }
func (p *player) Grid() *Grid          { return p.grid }
func (p *player) Fleet() *Fleet        { return p.fleet }
func (p *player) HasBombsLoaded() bool { return p.bombsLoaded > 0 }

// ReloadBombs loads the ammo of a new turn. Calling it again within the
// same turn loads the same amount.
func (p *player) ReloadBombs() {
	p.bombsLoaded = p.settings.Mode().ShotsPerTurn(p.fleet, p.grid)
}

// ShootAt drops one bomb on the opponent's grid. An out of bounds target
// returns an error and keeps the bomb loaded.
func (p *player) ShootAt(opponent Player, target Coordinate) (ShotResult, error) {
	if _, err := opponent.Grid().Shoot(target); err != nil {
		return ShotResult{}, err
	}
	p.bombsLoaded--

	ship := opponent.Fleet().FindShipAtCoordinate(target)
	if ship == nil {
		return NewMissedShotResult(), nil
	}
	return NewHitShotResult(ship, opponent.Grid(), p.settings.MustReportSunkenShip), nil
}

type HumanPlayer struct {
	player
}

var _ Player = (*HumanPlayer)(nil)

func NewHumanPlayer(user User, settings *GameSettings) *HumanPlayer {
	return &HumanPlayer{player: newPlayer(user.Id, user.NickName, settings)}
}

// ComputerPlayer positions its fleet randomly on creation and picks its
// targets with a ShootingStrategy.
type ComputerPlayer struct {
	player
	strategy ShootingStrategy
}

var _ Player = (*ComputerPlayer)(nil)

func NewComputerPlayer(settings *GameSettings, strategy ShootingStrategy) *ComputerPlayer {
	computer := &ComputerPlayer{
		player:   newPlayer(uuid.NewString(), ComputerNickName, settings),
		strategy: strategy,
	}
	computer.fleet.RandomlyPositionOnGrid(computer.grid)

	return computer
}

func (cp *ComputerPlayer) Strategy() ShootingStrategy {
	return cp.strategy
}

// ShootAutomatically fires one bomb at the coordinate the strategy picks
// and feeds the outcome back to the strategy.
func (cp *ComputerPlayer) ShootAutomatically(opponent Player) (ShotResult, error) {
	target, err := cp.strategy.DetermineTargetCoordinate()
	if err != nil {
		return ShotResult{}, cerr.ErrComputerShot(err)
	}

	result, err := cp.ShootAt(opponent, target)
	if err != nil {
		return ShotResult{}, cerr.ErrComputerShot(err)
	}
	cp.strategy.RegisterShotResult(target, result)

	log.Debug().
		Str("player", cp.id).
		Stringer("target", target).
		Bool("hit", result.Hit).
		Msg("computer shot")

	return result, nil
}
