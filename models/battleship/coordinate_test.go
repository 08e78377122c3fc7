package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateIsOutOfBounds(t *testing.T) {
	tests := []struct {
		name       string
		coordinate Coordinate
		expected   bool
	}{
		{name: "top left corner", coordinate: NewCoordinate(0, 0), expected: false},
		{name: "bottom right corner", coordinate: NewCoordinate(9, 9), expected: false},
		{name: "negative row", coordinate: NewCoordinate(-1, 4), expected: true},
		{name: "negative column", coordinate: NewCoordinate(4, -1), expected: true},
		{name: "row equal to size", coordinate: NewCoordinate(10, 0), expected: true},
		{name: "column equal to size", coordinate: NewCoordinate(0, 10), expected: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.coordinate.IsOutOfBounds(10))
		})
	}
}

func TestCoordinateNeighbor(t *testing.T) {
	c := NewCoordinate(4, 4)

	assert.Equal(t, NewCoordinate(3, 4), c.Neighbor(North))
	assert.Equal(t, NewCoordinate(4, 5), c.Neighbor(East))
	assert.Equal(t, NewCoordinate(5, 4), c.Neighbor(South))
	assert.Equal(t, NewCoordinate(4, 3), c.Neighbor(West))
	assert.Equal(t, NewCoordinate(5, 5), c.Neighbor(SouthEast))
	assert.Equal(t, NewCoordinate(3, 3), c.Neighbor(NorthWest))
	assert.Equal(t, NewCoordinate(4, 7), c.OtherEnd(East, 3))
}

func TestRandomCoordinateStaysInsideTheGrid(t *testing.T) {
	for range 200 {
		require.False(t, RandomCoordinate(10).IsOutOfBounds(10))
	}
}

func TestCoordinatesAlignment(t *testing.T) {
	horizontal := Coordinates{{2, 1}, {2, 2}, {2, 3}}
	vertical := Coordinates{{1, 5}, {2, 5}, {3, 5}}
	diagonal := Coordinates{{1, 1}, {2, 2}, {3, 3}}

	assert.True(t, horizontal.AreHorizontallyAligned())
	assert.False(t, horizontal.AreVerticallyAligned())
	assert.True(t, vertical.AreVerticallyAligned())
	assert.True(t, vertical.AreAligned())
	assert.False(t, diagonal.AreAligned())
}

func TestCoordinatesAreLinked(t *testing.T) {
	tests := []struct {
		name        string
		coordinates Coordinates
		expected    bool
	}{
		{name: "horizontal run", coordinates: Coordinates{{0, 0}, {0, 1}, {0, 2}}, expected: true},
		{name: "vertical run out of order", coordinates: Coordinates{{3, 4}, {1, 4}, {2, 4}}, expected: true},
		{name: "gap", coordinates: Coordinates{{0, 0}, {0, 2}, {0, 3}}, expected: false},
		{name: "duplicate", coordinates: Coordinates{{0, 0}, {0, 1}, {0, 1}}, expected: false},
		{name: "not aligned", coordinates: Coordinates{{0, 0}, {1, 1}}, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.coordinates.AreLinked())
		})
	}
}

func TestCoordinatesAreChained(t *testing.T) {
	tests := []struct {
		name        string
		coordinates Coordinates
		expected    bool
	}{
		{name: "diagonal", coordinates: Coordinates{{0, 0}, {1, 1}, {2, 2}}, expected: true},
		{name: "bent", coordinates: Coordinates{{0, 0}, {0, 1}, {1, 2}, {2, 2}}, expected: true},
		{name: "jump", coordinates: Coordinates{{0, 0}, {0, 2}}, expected: false},
		{name: "repeat", coordinates: Coordinates{{0, 0}, {0, 1}, {0, 0}}, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.coordinates.AreChained())
		})
	}
}

func TestDirection(t *testing.T) {
	t.Run("opposite", func(t *testing.T) {
		assert.Equal(t, South, North.Opposite())
		assert.Equal(t, SouthWest, NorthEast.Opposite())
	})

	t.Run("from coordinates", func(t *testing.T) {
		assert.Equal(t, East, DirectionFromCoordinates(NewCoordinate(2, 2), NewCoordinate(2, 7)))
		assert.Equal(t, NorthWest, DirectionFromCoordinates(NewCoordinate(5, 5), NewCoordinate(3, 3)))
	})

	t.Run("random basic direction is never diagonal", func(t *testing.T) {
		for range 100 {
			require.False(t, RandomDirection(false).IsDiagonal())
		}
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "North", North.String())
		assert.Equal(t, "SouthEast", SouthEast.String())
		assert.Equal(t, "West", West.String())
	})
}
