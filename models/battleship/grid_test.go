package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	grid := NewGrid(12)

	require.Equal(t, 12, grid.Size())
	require.Len(t, grid.Squares(), 12)
	for row, squares := range grid.Squares() {
		require.Len(t, squares, 12)
		for column, square := range squares {
			assert.Equal(t, NewCoordinate(row, column), square.Coordinate)
			assert.Equal(t, SquareStatusUntouched, square.Status)
			assert.Zero(t, square.NumberOfBombs)
			assert.False(t, square.IsOccupied())
		}
	}
}

func TestGridSquareAt(t *testing.T) {
	grid := NewGrid(10)

	square, err := grid.SquareAt(NewCoordinate(3, 7))
	require.NoError(t, err)
	assert.Same(t, grid.Squares()[3][7], square)

	_, err = grid.SquareAt(NewCoordinate(10, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerr.ErrOutOfBounds))
}

func TestGridShoot(t *testing.T) {
	t.Run("empty square becomes a miss", func(t *testing.T) {
		grid := NewGrid(10)

		square, err := grid.Shoot(NewCoordinate(1, 1))
		require.NoError(t, err)
		assert.Equal(t, SquareStatusMiss, square.Status)
		assert.Equal(t, 1, square.NumberOfBombs)
	})

	t.Run("occupied square becomes a hit", func(t *testing.T) {
		grid := NewGrid(10)
		grid.occupy(Coordinates{{4, 4}}, ShipKindPatrolBoat)

		square, err := grid.Shoot(NewCoordinate(4, 4))
		require.NoError(t, err)
		assert.Equal(t, SquareStatusHit, square.Status)
	})

	t.Run("repeated shots only add bombs", func(t *testing.T) {
		grid := NewGrid(10)
		grid.occupy(Coordinates{{0, 0}}, ShipKindCarrier)

		grid.Shoot(NewCoordinate(0, 0))
		grid.Shoot(NewCoordinate(0, 0))
		square, err := grid.Shoot(NewCoordinate(0, 0))
		require.NoError(t, err)
		assert.Equal(t, SquareStatusHit, square.Status)
		assert.Equal(t, 3, square.NumberOfBombs)
	})

	t.Run("out of bounds", func(t *testing.T) {
		grid := NewGrid(10)

		_, err := grid.Shoot(NewCoordinate(-1, 3))
		require.ErrorIs(t, err, cerr.ErrOutOfBounds)
	})
}

func TestGridStatusAtTreatsOutOfBoundsAsMiss(t *testing.T) {
	grid := NewGrid(10)

	assert.Equal(t, SquareStatusMiss, grid.StatusAt(NewCoordinate(10, 10)))
	assert.False(t, grid.IsUntouched(NewCoordinate(-1, 0)))
	assert.True(t, grid.IsUntouched(NewCoordinate(0, 0)))
}
