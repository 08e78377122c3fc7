package battleship

import (
	"time"

	"golang.org/x/exp/rand"
)

func init() {
	// x/exp/rand starts from a fixed seed
	rand.Seed(uint64(time.Now().UnixNano()))
}

// Direction is a unit step on the grid. XStep moves along columns
// (-1 left, 1 right) and YStep moves along rows (-1 up, 1 down).
type Direction struct {
	XStep int
	YStep int
}

var (
	North     = Direction{XStep: 0, YStep: -1}
	NorthEast = Direction{XStep: 1, YStep: -1}
	East      = Direction{XStep: 1, YStep: 0}
	SouthEast = Direction{XStep: 1, YStep: 1}
	South     = Direction{XStep: 0, YStep: 1}
	SouthWest = Direction{XStep: -1, YStep: 1}
	West      = Direction{XStep: -1, YStep: 0}
	NorthWest = Direction{XStep: -1, YStep: -1}
)

// The first four entries are the basic directions.
var AllDirections = [8]Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}

var BasicDirections = [4]Direction{North, East, South, West}

// RandomDirection picks one of the basic directions, or one of all
// eight when diagonals are allowed.
func RandomDirection(allowDiagonal bool) Direction {
	if allowDiagonal {
		return AllDirections[rand.Intn(len(AllDirections))]
	}
	return BasicDirections[rand.Intn(len(BasicDirections))]
}

// DirectionFromCoordinates returns the step that leads from one
// coordinate towards another, each axis normalized on its own.
func DirectionFromCoordinates(from, to Coordinate) Direction {
	return Direction{
		XStep: sign(to.Column - from.Column),
		YStep: sign(to.Row - from.Row),
	}
}

func (d Direction) Opposite() Direction {
	return Direction{XStep: -d.XStep, YStep: -d.YStep}
}

func (d Direction) IsDiagonal() bool {
	return d.XStep != 0 && d.YStep != 0
}

func (d Direction) String() string {
	if d.YStep == 0 {
		if d.XStep == 1 {
			return "East"
		}
		return "West"
	}

	direction := "South"
	if d.YStep == -1 {
		direction = "North"
	}
	switch d.XStep {
	case -1:
		direction += "West"
	case 1:
		direction += "East"
	}
	return direction
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
