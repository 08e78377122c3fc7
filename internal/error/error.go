package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrShootFailed    = "shoot operation failed"
	ConstErrPositionFailed = "position ship operation failed"
)

// Sentinels for contract errors. Callers match them with errors.Is
// and translate them at the transport boundary.
var (
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrUnknownShipKind  = errors.New("unknown ship kind")
	ErrNotFound         = errors.New("not found")
	ErrNoTargetsLeft    = errors.New("no targets left")
	ErrInvalidSettings  = errors.New("invalid game settings")
	ErrComputerTurn     = errors.New("computer turn failed")
	ErrSessionNotExists = errors.New("session does not exist")
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s: %w", gameUuid, ErrNotFound)
}

func ErrPlayerNotExist(playerUuid string) error {
	return fmt.Errorf("player with this uuid does not exist, uuid: %s: %w", playerUuid, ErrNotFound)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s: %w", sessionId, ErrSessionNotExists)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s: %w", sessionId, ErrSessionNotExists)
}

func ErrRowOrColumnOutOfGridBound(row, column, gridSize int) error {
	return fmt.Errorf("incoming row or column is out of grid bound\trow: %d\tcolumn: %d\tsize: %d: %w", row, column, gridSize, ErrOutOfBounds)
}

func ErrShipCodeNotExists(code string) error {
	return fmt.Errorf("the ship code %s does not exist: %w", code, ErrUnknownShipKind)
}

func ErrAllSquaresShot(gridSize int) error {
	return fmt.Errorf("every square of the %dx%d grid is already shot: %w", gridSize, gridSize, ErrNoTargetsLeft)
}

func ErrGridSizeOutOfRange(gridSize, lower, upper int) error {
	return fmt.Errorf("grid size must be between %d and %d, got: %d: %w", lower, upper, gridSize, ErrInvalidSettings)
}

func ErrTurnsBeforeMoveOutOfRange(turns, lower, upper int) error {
	return fmt.Errorf("turns before a ship can move must be between %d and %d, got: %d: %w", lower, upper, turns, ErrInvalidSettings)
}

func ErrInvalidGameMode(mode int) error {
	return fmt.Errorf("game mode does not exist: %d: %w", mode, ErrInvalidSettings)
}

func ErrInvalidGameDifficulty(difficulty uint8) error {
	return fmt.Errorf("game difficulty does not exist: %d: %w", difficulty, ErrInvalidSettings)
}

func ErrComputerShot(err error) error {
	return fmt.Errorf("%w: %w", ErrComputerTurn, err)
}

func ErrSessionWithoutGame(sessionId string) error {
	return fmt.Errorf("session has no game to wait for, id: %s", sessionId)
}

func ErrGracePeriodOver(sessionId string) error {
	return fmt.Errorf("grace period is over for session: %s", sessionId)
}

func ErrSignalAbsent() error {
	return errors.New("incoming req payload must contain 'code' field")
}
