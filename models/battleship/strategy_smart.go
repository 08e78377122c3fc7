package battleship

import (
	"slices"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
	"golang.org/x/exp/rand"
)

// SmartShootingStrategy hunts with random shots on squares that can
// still host an unsunk ship and, once a ship is hit, targets the squares
// around the hits on that ship until it is reported sunk.
type SmartShootingStrategy struct {
	grid       *Grid
	directions []Direction

	// hits per ship that has not been reported sunk, in shot order
	openHits map[ShipKind]Coordinates
	// keys of openHits, first hit first
	hitOrder []ShipKind
	sunk     map[ShipKind]bool
}

var _ ShootingStrategy = (*SmartShootingStrategy)(nil)

func NewSmartShootingStrategy(settings *GameSettings, opponentGrid *Grid) *SmartShootingStrategy {
	directions := BasicDirections[:]
	if settings.AllowDeformedShips {
		directions = AllDirections[:]
	}

	return &SmartShootingStrategy{
		grid:       opponentGrid,
		directions: directions,
		openHits:   make(map[ShipKind]Coordinates),
		sunk:       make(map[ShipKind]bool),
	}
}

func (ss *SmartShootingStrategy) RegisterShotResult(target Coordinate, result ShotResult) {
	if !result.Hit || result.hitShipKind == ShipKindNone {
		return
	}
	kind := result.hitShipKind

	if result.HasSunkShip() {
		ss.sunk[*result.SunkenShipKind] = true
		ss.dropOpenHits(*result.SunkenShipKind)
		return
	}

	if _, prs := ss.openHits[kind]; !prs {
		ss.hitOrder = append(ss.hitOrder, kind)
	}
	if !ss.openHits[kind].Contains(target) {
		ss.openHits[kind] = append(ss.openHits[kind], target)
	}
}

func (ss *SmartShootingStrategy) dropOpenHits(kind ShipKind) {
	delete(ss.openHits, kind)
	ss.hitOrder = slices.DeleteFunc(ss.hitOrder, func(k ShipKind) bool { return k == kind })
}

func (ss *SmartShootingStrategy) DetermineTargetCoordinate() (Coordinate, error) {
	if candidates := ss.lineExtensions(); len(candidates) > 0 {
		return pickCoordinate(candidates), nil
	}
	if candidates := ss.hitNeighbors(); len(candidates) > 0 {
		return pickCoordinate(candidates), nil
	}

	untouched := ss.untouchedCoordinates()
	if len(untouched) == 0 {
		return Coordinate{}, cerr.ErrAllSquaresShot(ss.grid.Size())
	}

	minSize := ss.smallestUnsunkShipSize()
	var hosting []Coordinate
	for _, c := range untouched {
		if ss.canHostShip(c, minSize) {
			hosting = append(hosting, c)
		}
	}
	if len(hosting) > 0 {
		return pickCoordinate(hosting), nil
	}
	return pickCoordinate(untouched), nil
}

// lineExtensions returns the untouched squares just past either end of
// every ship that has two or more hits on one row or column.
func (ss *SmartShootingStrategy) lineExtensions() []Coordinate {
	var candidates []Coordinate
	for _, kind := range ss.hitOrder {
		hits := ss.openHits[kind]
		if len(hits) < 2 {
			continue
		}

		var first, last Coordinate
		var step Direction
		switch {
		case hits.AreHorizontallyAligned():
			first, last = extremes(hits, func(c Coordinate) int { return c.Column })
			step = East
		case hits.AreVerticallyAligned():
			first, last = extremes(hits, func(c Coordinate) int { return c.Row })
			step = South
		default:
			continue
		}

		for _, c := range []Coordinate{first.Neighbor(step.Opposite()), last.Neighbor(step)} {
			if ss.grid.IsUntouched(c) {
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}

// hitNeighbors returns the untouched neighbors of the open hits.
func (ss *SmartShootingStrategy) hitNeighbors() []Coordinate {
	var candidates []Coordinate
	for _, kind := range ss.hitOrder {
		for _, hit := range ss.openHits[kind] {
			for _, d := range ss.directions {
				c := hit.Neighbor(d)
				if ss.grid.IsUntouched(c) && !slices.Contains(candidates, c) {
					candidates = append(candidates, c)
				}
			}
		}
	}
	return candidates
}

func (ss *SmartShootingStrategy) untouchedCoordinates() []Coordinate {
	var untouched []Coordinate
	for row := range ss.grid.Size() {
		for column := range ss.grid.Size() {
			c := NewCoordinate(row, column)
			if ss.grid.IsUntouched(c) {
				untouched = append(untouched, c)
			}
		}
	}
	return untouched
}

func (ss *SmartShootingStrategy) smallestUnsunkShipSize() int {
	smallest := 0
	for _, kind := range AllShipKinds {
		if ss.sunk[kind] {
			continue
		}
		if smallest == 0 || kind.Size() < smallest {
			smallest = kind.Size()
		}
	}
	return max(smallest, 1)
}

// canHostShip reports whether c lies on a run of at least size untouched
// squares along one of the directions a ship can be laid in.
func (ss *SmartShootingStrategy) canHostShip(c Coordinate, size int) bool {
	for _, d := range ss.directions {
		// each axis is covered by the direction and its opposite
		if d == South || d == West || d == SouthWest || d == NorthWest {
			continue
		}
		run := 1 + ss.untouchedRun(c, d) + ss.untouchedRun(c, d.Opposite())
		if run >= size {
			return true
		}
	}
	return false
}

func (ss *SmartShootingStrategy) untouchedRun(from Coordinate, d Direction) int {
	run := 0
	for c := from.Neighbor(d); ss.grid.IsUntouched(c); c = c.Neighbor(d) {
		run++
	}
	return run
}

func extremes(cs Coordinates, axis func(Coordinate) int) (Coordinate, Coordinate) {
	first, last := cs[0], cs[0]
	for _, c := range cs[1:] {
		if axis(c) < axis(first) {
			first = c
		}
		if axis(c) > axis(last) {
			last = c
		}
	}
	return first, last
}

func pickCoordinate(cs []Coordinate) Coordinate {
	return cs[rand.Intn(len(cs))]
}
