package battleship

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/rand"
)

// Coordinate is a position on a grid. It carries no bounds of its own;
// callers check it against an explicit grid size.
type Coordinate struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func NewCoordinate(row, column int) Coordinate {
	return Coordinate{Row: row, Column: column}
}

// RandomCoordinate returns a coordinate inside a grid of gridSize.
func RandomCoordinate(gridSize int) Coordinate {
	return Coordinate{Row: rand.Intn(gridSize), Column: rand.Intn(gridSize)}
}

func (c Coordinate) IsOutOfBounds(gridSize int) bool {
	return c.Row < 0 || c.Row >= gridSize || c.Column < 0 || c.Column >= gridSize
}

func (c Coordinate) Neighbor(d Direction) Coordinate {
	return c.OtherEnd(d, 1)
}

func (c Coordinate) OtherEnd(d Direction, distance int) Coordinate {
	return Coordinate{
		Row:    c.Row + d.YStep*distance,
		Column: c.Column + d.XStep*distance,
	}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Coordinates is an ordered list of coordinates, typically the segments of a ship.
type Coordinates []Coordinate

func (cs Coordinates) HasAnyOutOfBounds(gridSize int) bool {
	for _, c := range cs {
		if c.IsOutOfBounds(gridSize) {
			return true
		}
	}
	return false
}

func (cs Coordinates) AreHorizontallyAligned() bool {
	for _, c := range cs {
		if c.Row != cs[0].Row {
			return false
		}
	}
	return true
}

func (cs Coordinates) AreVerticallyAligned() bool {
	for _, c := range cs {
		if c.Column != cs[0].Column {
			return false
		}
	}
	return true
}

func (cs Coordinates) AreAligned() bool {
	return cs.AreHorizontallyAligned() || cs.AreVerticallyAligned()
}

// AreLinked reports whether aligned coordinates form one contiguous run.
// Duplicates and gaps both break the run.
func (cs Coordinates) AreLinked() bool {
	if len(cs) < 2 {
		return true
	}

	var positions []int
	switch {
	case cs.AreHorizontallyAligned():
		for _, c := range cs {
			positions = append(positions, c.Column)
		}
	case cs.AreVerticallyAligned():
		for _, c := range cs {
			positions = append(positions, c.Row)
		}
	default:
		return false
	}

	slices.Sort(positions)
	for i := 1; i < len(positions); i++ {
		if positions[i]-positions[i-1] != 1 {
			return false
		}
	}
	return true
}

// AreChained is the relaxed form of AreLinked used for deformed ships:
// each coordinate touches the previous one in any of the 8 directions
// and no coordinate repeats.
func (cs Coordinates) AreChained() bool {
	seen := make(map[Coordinate]bool, len(cs))
	for i, c := range cs {
		if seen[c] {
			return false
		}
		seen[c] = true

		if i == 0 {
			continue
		}
		prev := cs[i-1]
		if abs(c.Row-prev.Row) > 1 || abs(c.Column-prev.Column) > 1 {
			return false
		}
	}
	return true
}

func (cs Coordinates) Contains(target Coordinate) bool {
	return slices.Contains(cs, target)
}

func (cs Coordinates) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
