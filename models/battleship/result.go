package battleship

// Result is the outcome of an operation that may be refused as part of
// normal play, such as an invalid ship placement.
type Result struct {
	IsSuccess bool   `json:"is_success"`
	Message   string `json:"message,omitempty"`
}

func NewSuccessResult() Result {
	return Result{IsSuccess: true}
}

func NewFailureResult(message string) Result {
	return Result{IsSuccess: false, Message: message}
}

func (r Result) IsFailure() bool {
	return !r.IsSuccess
}

// ShotResult is the feedback on one shot. When ShotFired is false the
// shot was refused and MisfireReason says why.
type ShotResult struct {
	ShotFired      bool      `json:"shot_fired"`
	Hit            bool      `json:"hit"`
	SunkenShipKind *ShipKind `json:"sunken_ship_kind,omitempty"`
	MisfireReason  string    `json:"misfire_reason,omitempty"`

	// kind of the ship that was hit; only the shooting strategies read it
	hitShipKind ShipKind
}

func NewMissedShotResult() ShotResult {
	return ShotResult{ShotFired: true}
}

// NewHitShotResult reports a hit on ship. The sunken kind is filled in
// only when the hit sank the ship and sinking must be reported.
func NewHitShotResult(ship *Ship, grid *Grid, reportSunkenShip bool) ShotResult {
	result := ShotResult{
		ShotFired:   true,
		Hit:         true,
		hitShipKind: ship.Kind(),
	}

	if reportSunkenShip && ship.HasSunk(grid) {
		kind := ship.Kind()
		result.SunkenShipKind = &kind
	}
	return result
}

func NewMisfireShotResult(reason string) ShotResult {
	return ShotResult{ShotFired: false, MisfireReason: reason}
}

func (sr ShotResult) HasSunkShip() bool {
	return sr.SunkenShipKind != nil
}
