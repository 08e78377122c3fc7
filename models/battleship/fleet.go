package battleship

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Fleet owns the five ships of one player, one per kind.
type Fleet struct {
	ships              map[ShipKind]*Ship
	allowDeformedShips bool
}

func NewFleet(allowDeformedShips bool) *Fleet {
	ships := make(map[ShipKind]*Ship, len(AllShipKinds))
	for _, kind := range AllShipKinds {
		ships[kind] = NewShip(kind)
	}

	return &Fleet{
		ships:              ships,
		allowDeformedShips: allowDeformedShips,
	}
}

func (f *Fleet) IsPositionedOnGrid() bool {
	for _, ship := range f.ships {
		if !ship.IsPositioned() {
			return false
		}
	}
	return true
}

// Ship returns the ship of the given kind, nil for an unknown kind.
func (f *Fleet) Ship(kind ShipKind) *Ship {
	return f.ships[kind]
}

// TryMoveShipTo validates the segment coordinates and, when all checks
// pass, positions the ship of that kind on them. A failing check leaves
// the fleet and the grid untouched.
func (f *Fleet) TryMoveShipTo(kind ShipKind, segments Coordinates, grid *Grid) Result {
	ship, prs := f.ships[kind]
	if !prs {
		return NewFailureResult(fmt.Sprintf("the fleet has no ship of kind %d", kind))
	}

	if len(segments) != kind.Size() {
		return NewFailureResult(fmt.Sprintf("a %s needs %d segment coordinates, got %d", kind.Name(), kind.Size(), len(segments)))
	}

	if segments.HasAnyOutOfBounds(grid.Size()) {
		return NewFailureResult(fmt.Sprintf("the coordinates %s are not all within the %dx%d grid", segments, grid.Size(), grid.Size()))
	}

	if f.allowDeformedShips {
		if !segments.AreChained() {
			return NewFailureResult(fmt.Sprintf("the coordinates %s do not touch each other", segments))
		}
	} else {
		if !segments.AreAligned() {
			return NewFailureResult(fmt.Sprintf("the coordinates %s are not horizontally or vertically aligned", segments))
		}
		if !segments.AreLinked() {
			return NewFailureResult(fmt.Sprintf("the coordinates %s are not linked", segments))
		}
	}

	for _, c := range segments {
		other := f.FindShipAtCoordinate(c)
		if other != nil && other.Kind() != kind {
			return NewFailureResult(fmt.Sprintf("the %s collides with the %s at %s", kind.Name(), other.Kind().Name(), c))
		}
	}

	ship.positionOnGrid(grid, segments)
	return NewSuccessResult()
}

// RandomlyPositionOnGrid keeps drawing random segments for each ship
// until the placement succeeds.
func (f *Fleet) RandomlyPositionOnGrid(grid *Grid) {
	for _, kind := range AllShipKinds {
		attempts := 1
		for !f.TryMoveShipTo(kind, kind.GenerateRandomSegmentCoordinates(grid.Size(), f.allowDeformedShips), grid).IsSuccess {
			attempts++
		}
		log.Debug().Str("ship", kind.Code()).Int("attempts", attempts).Msg("ship randomly positioned")
	}
}

func (f *Fleet) FindShipAtCoordinate(c Coordinate) *Ship {
	for _, kind := range AllShipKinds {
		if f.ships[kind].CanBeFoundAtCoordinate(c) {
			return f.ships[kind]
		}
	}
	return nil
}

// GetAllShips returns the ships in fleet order.
func (f *Fleet) GetAllShips() []*Ship {
	ships := make([]*Ship, 0, len(AllShipKinds))
	for _, kind := range AllShipKinds {
		ships = append(ships, f.ships[kind])
	}
	return ships
}

func (f *Fleet) GetSunkenShips(grid *Grid) []*Ship {
	var sunken []*Ship
	for _, ship := range f.GetAllShips() {
		if ship.HasSunk(grid) {
			sunken = append(sunken, ship)
		}
	}
	return sunken
}

// BiggestUndamagedShipSize is 0 when every ship took a hit.
func (f *Fleet) BiggestUndamagedShipSize(grid *Grid) int {
	biggest := 0
	for _, ship := range f.ships {
		if ship.IsPositioned() && !ship.IsDamaged(grid) {
			biggest = max(biggest, ship.Kind().Size())
		}
	}
	return biggest
}

func (f *Fleet) RemainingShips(grid *Grid) int {
	return len(f.ships) - len(f.GetSunkenShips(grid))
}
