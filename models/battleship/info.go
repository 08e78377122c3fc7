package battleship

// GameInfo is a game seen through the eyes of one of its players.
type GameInfo struct {
	Id                  string     `json:"id"`
	IsReadyToStart      bool       `json:"is_ready_to_start"`
	HasBombsLoaded      bool       `json:"has_bombs_loaded"`
	OwnGrid             GridInfo   `json:"own_grid"`
	OwnShips            []ShipInfo `json:"own_ships"`
	OpponentGrid        GridInfo   `json:"opponent_grid"`
	SunkenOpponentShips []ShipInfo `json:"sunken_opponent_ships"`
}

type GridInfo struct {
	Size    int                `json:"size"`
	Squares [][]GridSquareInfo `json:"squares"`
}

type GridSquareInfo struct {
	Status        SquareStatus `json:"status"`
	NumberOfBombs int          `json:"number_of_bombs"`
}

type ShipInfo struct {
	Kind        ShipKind    `json:"kind"`
	HasSunk     bool        `json:"has_sunk"`
	Coordinates Coordinates `json:"coordinates"`
}

func NewGameInfo(game *Game, playerId string) (GameInfo, error) {
	player, err := game.GetPlayerById(playerId)
	if err != nil {
		return GameInfo{}, err
	}
	opponent := game.GetOpponent(player)

	sunkenOpponentShips := []ShipInfo{}
	if game.Settings.MustReportSunkenShip {
		sunkenOpponentShips = newShipInfos(opponent.Fleet().GetSunkenShips(opponent.Grid()), opponent.Grid())
	}

	return GameInfo{
		Id:                  game.Id,
		IsReadyToStart:      game.IsReadyToStart(),
		HasBombsLoaded:      player.HasBombsLoaded(),
		OwnGrid:             NewGridInfo(player.Grid()),
		OwnShips:            newShipInfos(player.Fleet().GetAllShips(), player.Grid()),
		OpponentGrid:        NewGridInfo(opponent.Grid()),
		SunkenOpponentShips: sunkenOpponentShips,
	}, nil
}

// NewGridInfo copies the statuses of the grid. It never reveals where the
// ships are.
func NewGridInfo(grid *Grid) GridInfo {
	squares := make([][]GridSquareInfo, grid.Size())
	for row, gridRow := range grid.Squares() {
		squares[row] = make([]GridSquareInfo, len(gridRow))
		for column, square := range gridRow {
			squares[row][column] = GridSquareInfo{Status: square.Status, NumberOfBombs: square.NumberOfBombs}
		}
	}
	return GridInfo{Size: grid.Size(), Squares: squares}
}

// NewShipInfo leaves Coordinates empty for a ship that is not positioned.
func NewShipInfo(ship *Ship, grid *Grid) ShipInfo {
	coordinates := Coordinates{}
	if ship.IsPositioned() {
		coordinates = append(coordinates, ship.Coordinates()...)
	}

	return ShipInfo{
		Kind:        ship.Kind(),
		HasSunk:     ship.HasSunk(grid),
		Coordinates: coordinates,
	}
}

func newShipInfos(ships []*Ship, grid *Grid) []ShipInfo {
	infos := make([]ShipInfo, 0, len(ships))
	for _, ship := range ships {
		infos = append(infos, NewShipInfo(ship, grid))
	}
	return infos
}
