package battleship

import (
	cerr "github.com/saeidalz13/battleship-core/internal/error"
)

type SquareStatus uint8

const (
	SquareStatusUntouched SquareStatus = iota
	SquareStatusMiss
	SquareStatusHit
)

func (s SquareStatus) String() string {
	switch s {
	case SquareStatusMiss:
		return "Miss"
	case SquareStatusHit:
		return "Hit"
	default:
		return "Untouched"
	}
}

// Square is one cell of a Grid. The occupant is the kind of the ship
// currently positioned on it, ShipKindNone when empty.
type Square struct {
	Coordinate    Coordinate
	Status        SquareStatus
	NumberOfBombs int
	occupant      ShipKind
}

func (s *Square) Occupant() ShipKind {
	return s.occupant
}

func (s *Square) IsOccupied() bool {
	return s.occupant != ShipKindNone
}

// hitByBomb adds a bomb to the square. A square hosting a ship
// becomes Hit; an empty one becomes Miss unless it was already Hit.
func (s *Square) hitByBomb() {
	s.NumberOfBombs++

	if s.IsOccupied() {
		s.Status = SquareStatusHit
		return
	}
	if s.Status == SquareStatusUntouched {
		s.Status = SquareStatusMiss
	}
}

// Grid is the square board of one player. It owns its squares.
type Grid struct {
	size    int
	squares [][]*Square
}

func NewGrid(size int) *Grid {
	squares := make([][]*Square, size)
	for row := range size {
		squares[row] = make([]*Square, size)
		for column := range size {
			squares[row][column] = &Square{Coordinate: NewCoordinate(row, column)}
		}
	}

	return &Grid{size: size, squares: squares}
}

func (g *Grid) Size() int {
	return g.size
}

// Squares returns the rows of the grid. The squares are the grid's own.
func (g *Grid) Squares() [][]*Square {
	return g.squares
}

func (g *Grid) SquareAt(c Coordinate) (*Square, error) {
	if c.IsOutOfBounds(g.size) {
		return nil, cerr.ErrRowOrColumnOutOfGridBound(c.Row, c.Column, g.size)
	}
	return g.squares[c.Row][c.Column], nil
}

// Shoot drops a bomb on the square at c and returns that square.
func (g *Grid) Shoot(c Coordinate) (*Square, error) {
	square, err := g.SquareAt(c)
	if err != nil {
		return nil, err
	}

	square.hitByBomb()
	return square, nil
}

// StatusAt returns the status at c. Out of bounds coordinates are
// reported as Miss so that search code treats them as blocked.
func (g *Grid) StatusAt(c Coordinate) SquareStatus {
	if c.IsOutOfBounds(g.size) {
		return SquareStatusMiss
	}
	return g.squares[c.Row][c.Column].Status
}

func (g *Grid) IsUntouched(c Coordinate) bool {
	return !c.IsOutOfBounds(g.size) && g.squares[c.Row][c.Column].Status == SquareStatusUntouched
}

func (g *Grid) occupy(cs Coordinates, kind ShipKind) {
	for _, c := range cs {
		g.squares[c.Row][c.Column].occupant = kind
	}
}

func (g *Grid) vacate(cs Coordinates) {
	for _, c := range cs {
		g.squares[c.Row][c.Column].occupant = ShipKindNone
	}
}
