package battleship

import (
	cerr "github.com/saeidalz13/battleship-core/internal/error"
)

const (
	GridSizeMin     = 10
	GridSizeMax     = 15
	GridSizeDefault = 10

	TurnsBeforeShipCanMoveMin     = 1
	TurnsBeforeShipCanMoveMax     = 10
	TurnsBeforeShipCanMoveDefault = 5

	constantShotsPerTurn = 5
)

type GameMode int

const (
	GameModeDefault GameMode = iota + 1
	GameModeMultipleShotsPerTurnConstant
	GameModeMultipleShotsPerTurnBiggestUndamagedShip
	GameModeMultipleShotsPerTurnNumberOfShips
)

func (m GameMode) IsValid() bool {
	return m >= GameModeDefault && m <= GameModeMultipleShotsPerTurnNumberOfShips
}

// ShotsPerTurn is the number of bombs a player gets loaded at the start
// of a turn. It never drops below one.
func (m GameMode) ShotsPerTurn(fleet *Fleet, grid *Grid) int {
	var shots int
	switch m {
	case GameModeMultipleShotsPerTurnConstant:
		shots = constantShotsPerTurn
	case GameModeMultipleShotsPerTurnBiggestUndamagedShip:
		shots = fleet.BiggestUndamagedShipSize(grid)
	case GameModeMultipleShotsPerTurnNumberOfShips:
		shots = fleet.RemainingShips(grid)
	default:
		shots = 1
	}
	return max(shots, 1)
}

// GameSettings are the rules of one game. Range checked values are
// changed through their setters, which leave the old value in place
// when the new one is rejected.
type GameSettings struct {
	gridSize                           int
	AllowDeformedShips                 bool
	mode                               GameMode
	MustReportSunkenShip               bool
	CanMoveUndamagedShipsDuringGame    bool
	numberOfTurnsBeforeAShipCanBeMoved int
}

func NewGameSettings() *GameSettings {
	return &GameSettings{
		gridSize:                           GridSizeDefault,
		AllowDeformedShips:                 false,
		mode:                               GameModeDefault,
		MustReportSunkenShip:               true,
		CanMoveUndamagedShipsDuringGame:    false,
		numberOfTurnsBeforeAShipCanBeMoved: TurnsBeforeShipCanMoveDefault,
	}
}

func (gs *GameSettings) GridSize() int { return gs.gridSize }

func (gs *GameSettings) SetGridSize(size int) error {
	if size < GridSizeMin || size > GridSizeMax {
		return cerr.ErrGridSizeOutOfRange(size, GridSizeMin, GridSizeMax)
	}
	gs.gridSize = size
	return nil
}

func (gs *GameSettings) Mode() GameMode { return gs.mode }

func (gs *GameSettings) SetMode(mode GameMode) error {
	if !mode.IsValid() {
		return cerr.ErrInvalidGameMode(int(mode))
	}
	gs.mode = mode
	return nil
}

func (gs *GameSettings) NumberOfTurnsBeforeAShipCanBeMoved() int {
	return gs.numberOfTurnsBeforeAShipCanBeMoved
}

func (gs *GameSettings) SetNumberOfTurnsBeforeAShipCanBeMoved(turns int) error {
	if turns < TurnsBeforeShipCanMoveMin || turns > TurnsBeforeShipCanMoveMax {
		return cerr.ErrTurnsBeforeMoveOutOfRange(turns, TurnsBeforeShipCanMoveMin, TurnsBeforeShipCanMoveMax)
	}
	gs.numberOfTurnsBeforeAShipCanBeMoved = turns
	return nil
}

// Validate re-checks the ranged values, which a zero GameSettings or
// one built without the setters does not satisfy.
func (gs *GameSettings) Validate() error {
	if gs.gridSize < GridSizeMin || gs.gridSize > GridSizeMax {
		return cerr.ErrGridSizeOutOfRange(gs.gridSize, GridSizeMin, GridSizeMax)
	}
	if !gs.mode.IsValid() {
		return cerr.ErrInvalidGameMode(int(gs.mode))
	}
	if gs.numberOfTurnsBeforeAShipCanBeMoved < TurnsBeforeShipCanMoveMin || gs.numberOfTurnsBeforeAShipCanBeMoved > TurnsBeforeShipCanMoveMax {
		return cerr.ErrTurnsBeforeMoveOutOfRange(gs.numberOfTurnsBeforeAShipCanBeMoved, TurnsBeforeShipCanMoveMin, TurnsBeforeShipCanMoveMax)
	}
	return nil
}

// GameSettingsInput is the wire form of GameSettings. Zero values fall
// back to the defaults.
type GameSettingsInput struct {
	GridSize                           int      `json:"grid_size,omitempty"`
	AllowDeformedShips                 bool     `json:"allow_deformed_ships"`
	Mode                               GameMode `json:"mode,omitempty"`
	MustReportSunkenShip               *bool    `json:"must_report_sunken_ship,omitempty"`
	CanMoveUndamagedShipsDuringGame    bool     `json:"can_move_undamaged_ships_during_game"`
	NumberOfTurnsBeforeAShipCanBeMoved int      `json:"number_of_turns_before_a_ship_can_be_moved,omitempty"`
}

// Build applies the input on top of the defaults, failing on the first
// value out of range.
func (in GameSettingsInput) Build() (*GameSettings, error) {
	settings := NewGameSettings()

	if in.GridSize != 0 {
		if err := settings.SetGridSize(in.GridSize); err != nil {
			return nil, err
		}
	}
	if in.Mode != 0 {
		if err := settings.SetMode(in.Mode); err != nil {
			return nil, err
		}
	}
	if in.NumberOfTurnsBeforeAShipCanBeMoved != 0 {
		if err := settings.SetNumberOfTurnsBeforeAShipCanBeMoved(in.NumberOfTurnsBeforeAShipCanBeMoved); err != nil {
			return nil, err
		}
	}
	if in.MustReportSunkenShip != nil {
		settings.MustReportSunkenShip = *in.MustReportSunkenShip
	}
	settings.AllowDeformedShips = in.AllowDeformedShips
	settings.CanMoveUndamagedShipsDuringGame = in.CanMoveUndamagedShipsDuringGame

	return settings, nil
}
