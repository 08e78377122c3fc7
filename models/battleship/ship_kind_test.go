package battleship

import (
	"encoding/json"
	"fmt"
	"testing"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipKindTable(t *testing.T) {
	tests := []struct {
		kind ShipKind
		code string
		name string
		size int
	}{
		{kind: ShipKindCarrier, code: "CAR", name: "Carrier", size: 5},
		{kind: ShipKindBattleship, code: "BS", name: "Battleship", size: 4},
		{kind: ShipKindDestroyer, code: "DS", name: "Destroyer", size: 3},
		{kind: ShipKindSubmarine, code: "SM", name: "Submarine", size: 3},
		{kind: ShipKindPatrolBoat, code: "PB", name: "Patrol boat", size: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.code, test.kind.Code())
			assert.Equal(t, test.name, test.kind.Name())
			assert.Equal(t, test.size, test.kind.Size())
		})
	}
}

func TestShipKindFromCode(t *testing.T) {
	kind, err := ShipKindFromCode("bs")
	require.NoError(t, err)
	assert.Equal(t, ShipKindBattleship, kind)

	_, err = ShipKindFromCode("XX")
	require.ErrorIs(t, err, cerr.ErrUnknownShipKind)
}

func TestShipKindTextEncoding(t *testing.T) {
	data, err := json.Marshal(map[string]ShipKind{"kind": ShipKindSubmarine})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"SM"}`, string(data))

	var decoded struct {
		Kind ShipKind `json:"kind"`
	}
	require.Error(t, json.Unmarshal([]byte(`{"kind":"ZZ"}`), &decoded))
}

func TestGenerateRandomSegmentCoordinates(t *testing.T) {
	const draws = 10

	for _, allowDeformed := range []bool{false, true} {
		for gridSize := GridSizeMin; gridSize <= GridSizeMax; gridSize++ {
			for _, kind := range AllShipKinds {
				name := fmt.Sprintf("%s on %dx%d deformed=%t", kind.Code(), gridSize, gridSize, allowDeformed)
				t.Run(name, func(t *testing.T) {
					seen := make(map[string]int, draws)

					for range draws {
						segments := kind.GenerateRandomSegmentCoordinates(gridSize, allowDeformed)

						require.Len(t, segments, kind.Size())
						require.False(t, segments.HasAnyOutOfBounds(gridSize), "segments %s", segments)
						if allowDeformed {
							require.True(t, segments.AreChained(), "segments %s", segments)
						} else {
							require.True(t, segments.AreAligned(), "segments %s", segments)
							require.True(t, segments.AreLinked(), "segments %s", segments)
						}
						seen[segments.String()]++
					}

					for segments, count := range seen {
						assert.LessOrEqual(t, count, 3, "segments %s drawn %d times", segments, count)
					}
				})
			}
		}
	}
}
