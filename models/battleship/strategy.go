package battleship

import (
	cerr "github.com/saeidalz13/battleship-core/internal/error"
	"golang.org/x/exp/rand"
)

type StrategyKind uint8

const (
	StrategyKindRandom StrategyKind = iota + 1
	StrategyKindSmart
)

// ShootingStrategy picks the targets of a computer player on the
// opponent's grid it was created with.
type ShootingStrategy interface {
	DetermineTargetCoordinate() (Coordinate, error)
	RegisterShotResult(target Coordinate, result ShotResult)
}

// GameDifficulty picks how the computer opponent shoots. The zero value
// is the normal difficulty.
type GameDifficulty uint8

const (
	GameDifficultyNormal GameDifficulty = iota
	GameDifficultyEasy
)

func (d GameDifficulty) IsValid() bool {
	return d == GameDifficultyNormal || d == GameDifficultyEasy
}

// StrategyKind is the shooting strategy of a computer at this difficulty.
func (d GameDifficulty) StrategyKind() StrategyKind {
	if d == GameDifficultyEasy {
		return StrategyKindRandom
	}
	return StrategyKindSmart
}

func NewShootingStrategy(kind StrategyKind, settings *GameSettings, opponentGrid *Grid) ShootingStrategy {
	if kind == StrategyKindRandom {
		return NewRandomShootingStrategy(opponentGrid)
	}
	return NewSmartShootingStrategy(settings, opponentGrid)
}

// untouchedPool holds the coordinates that have not been shot yet.
// Picked coordinates are swap removed; coordinates the grid reports as
// shot by someone else are dropped when they come up.
type untouchedPool struct {
	grid        *Grid
	coordinates []Coordinate
}

func newUntouchedPool(grid *Grid) *untouchedPool {
	coordinates := make([]Coordinate, 0, grid.Size()*grid.Size())
	for row := range grid.Size() {
		for column := range grid.Size() {
			c := NewCoordinate(row, column)
			if grid.IsUntouched(c) {
				coordinates = append(coordinates, c)
			}
		}
	}
	return &untouchedPool{grid: grid, coordinates: coordinates}
}

func (up *untouchedPool) removeAt(i int) {
	last := len(up.coordinates) - 1
	up.coordinates[i] = up.coordinates[last]
	up.coordinates = up.coordinates[:last]
}

// pick removes and returns a uniformly drawn untouched coordinate.
func (up *untouchedPool) pick() (Coordinate, bool) {
	for len(up.coordinates) > 0 {
		i := rand.Intn(len(up.coordinates))
		c := up.coordinates[i]
		up.removeAt(i)
		if up.grid.IsUntouched(c) {
			return c, true
		}
	}
	return Coordinate{}, false
}

// untouched compacts the pool and returns what is left. The slice is
// the pool's own.
func (up *untouchedPool) untouched() []Coordinate {
	for i := 0; i < len(up.coordinates); {
		if up.grid.IsUntouched(up.coordinates[i]) {
			i++
			continue
		}
		up.removeAt(i)
	}
	return up.coordinates
}

type RandomShootingStrategy struct {
	pool *untouchedPool
}

var _ ShootingStrategy = (*RandomShootingStrategy)(nil)

func NewRandomShootingStrategy(opponentGrid *Grid) *RandomShootingStrategy {
	return &RandomShootingStrategy{pool: newUntouchedPool(opponentGrid)}
}

func (rs *RandomShootingStrategy) DetermineTargetCoordinate() (Coordinate, error) {
	c, ok := rs.pool.pick()
	if !ok {
		return Coordinate{}, cerr.ErrAllSquaresShot(rs.pool.grid.Size())
	}
	return c, nil
}

// RegisterShotResult has nothing to learn: the pool already dropped the
// target when it was picked.
func (rs *RandomShootingStrategy) RegisterShotResult(Coordinate, ShotResult) {}
