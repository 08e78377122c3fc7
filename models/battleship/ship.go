package battleship

// Ship is one ship of a fleet. It only knows the coordinates it
// occupies; square statuses are read from the grid it is positioned on.
type Ship struct {
	kind        ShipKind
	coordinates Coordinates
}

func NewShip(kind ShipKind) *Ship {
	return &Ship{kind: kind}
}

func (sh *Ship) Kind() ShipKind {
	return sh.kind
}

// Coordinates returns nil while the ship is not positioned.
func (sh *Ship) Coordinates() Coordinates {
	return sh.coordinates
}

func (sh *Ship) IsPositioned() bool {
	return sh.coordinates != nil
}

func (sh *Ship) CanBeFoundAtCoordinate(c Coordinate) bool {
	return sh.coordinates.Contains(c)
}

func (sh *Ship) HasSunk(grid *Grid) bool {
	if !sh.IsPositioned() {
		return false
	}
	for _, c := range sh.coordinates {
		if grid.StatusAt(c) != SquareStatusHit {
			return false
		}
	}
	return true
}

// IsDamaged reports whether at least one segment has been hit.
func (sh *Ship) IsDamaged(grid *Grid) bool {
	for _, c := range sh.coordinates {
		if grid.StatusAt(c) == SquareStatusHit {
			return true
		}
	}
	return false
}

// positionOnGrid moves the occupant links of the grid along with the ship.
func (sh *Ship) positionOnGrid(grid *Grid, cs Coordinates) {
	if sh.IsPositioned() {
		grid.vacate(sh.coordinates)
	}

	sh.coordinates = append(Coordinates(nil), cs...)
	grid.occupy(sh.coordinates, sh.kind)
}
