package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
	"golang.org/x/exp/rand"
)

// ShipKind is one of the five kinds of ship in a fleet.
type ShipKind uint8

const (
	ShipKindNone ShipKind = iota
	ShipKindCarrier
	ShipKindBattleship
	ShipKindDestroyer
	ShipKindSubmarine
	ShipKindPatrolBoat
)

type shipKindInfo struct {
	code string
	name string
	size int
}

var shipKinds = map[ShipKind]shipKindInfo{
	ShipKindCarrier:    {code: "CAR", name: "Carrier", size: 5},
	ShipKindBattleship: {code: "BS", name: "Battleship", size: 4},
	ShipKindDestroyer:  {code: "DS", name: "Destroyer", size: 3},
	ShipKindSubmarine:  {code: "SM", name: "Submarine", size: 3},
	ShipKindPatrolBoat: {code: "PB", name: "Patrol boat", size: 2},
}

// AllShipKinds lists the kinds in fleet order, biggest first.
var AllShipKinds = [5]ShipKind{
	ShipKindCarrier,
	ShipKindBattleship,
	ShipKindDestroyer,
	ShipKindSubmarine,
	ShipKindPatrolBoat,
}

// ShipKindFromCode is case insensitive.
func ShipKindFromCode(code string) (ShipKind, error) {
	upper := strings.ToUpper(code)
	for _, kind := range AllShipKinds {
		if shipKinds[kind].code == upper {
			return kind, nil
		}
	}
	return ShipKindNone, cerr.ErrShipCodeNotExists(code)
}

func (k ShipKind) Code() string { return shipKinds[k].code }
func (k ShipKind) Name() string { return shipKinds[k].name }
func (k ShipKind) Size() int    { return shipKinds[k].size }

func (k ShipKind) String() string {
	if k == ShipKindNone {
		return "None"
	}
	return k.Name()
}

func (k ShipKind) MarshalText() ([]byte, error) {
	return []byte(k.Code()), nil
}

func (k *ShipKind) UnmarshalText(text []byte) error {
	kind, err := ShipKindFromCode(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// GenerateRandomSegmentCoordinates returns Size coordinates stepping in
// a random direction from a random start. The start is drawn from the
// range that keeps the whole segment on the grid, so only collisions
// with other ships can make the segment unusable.
func (k ShipKind) GenerateRandomSegmentCoordinates(gridSize int, allowDeformedShips bool) Coordinates {
	direction := RandomDirection(allowDeformedShips)
	start := Coordinate{
		Row:    randomStart(gridSize, k.Size(), direction.YStep),
		Column: randomStart(gridSize, k.Size(), direction.XStep),
	}

	segments := make(Coordinates, k.Size())
	for i := range segments {
		segments[i] = start.OtherEnd(direction, i)
	}
	return segments
}

func randomStart(gridSize, length, step int) int {
	span := gridSize - length + 1
	switch step {
	case 1:
		return rand.Intn(span)
	case -1:
		return length - 1 + rand.Intn(span)
	default:
		return rand.Intn(gridSize)
	}
}
