package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeCreateGame
	CodePositionShip
	CodeStartGame
	CodeShoot
	CodeGameInfo
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

// Error codes travel in RespErr next to the code of the request that
// failed.
const (
	ErrCodeBadRequest uint8 = iota + 1
	ErrCodeNotFound
	ErrCodeUnknownShipKind
	ErrCodeOutOfBounds
	ErrCodeInternal
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
