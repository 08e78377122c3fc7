package api

import (
	"errors"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
	mc "github.com/saeidalz13/battleship-core/models/connection"
)

const (
	errMsgNotFound        = "not found"
	errMsgUnknownShipKind = "bad request: unknown ship kind"
	errMsgOutOfBounds     = "bad request: coordinate out of bounds"
	errMsgInvalidSettings = "bad request: invalid game settings"
	errMsgMalformed       = "bad request: malformed payload"
)

// respErrFor maps a contract error to the error code and message sent to
// the client. Anything unrecognized is internal and gets fallbackMessage.
func respErrFor(err error, fallbackMessage string) (uint8, string) {
	switch {
	case errors.Is(err, cerr.ErrNotFound):
		return mc.ErrCodeNotFound, errMsgNotFound
	case errors.Is(err, cerr.ErrUnknownShipKind):
		return mc.ErrCodeUnknownShipKind, errMsgUnknownShipKind
	case errors.Is(err, cerr.ErrOutOfBounds):
		return mc.ErrCodeOutOfBounds, errMsgOutOfBounds
	case errors.Is(err, cerr.ErrInvalidSettings):
		return mc.ErrCodeBadRequest, errMsgInvalidSettings
	default:
		return mc.ErrCodeInternal, fallbackMessage
	}
}

func addRespErr[T any](msg *mc.Message[T], err error, fallbackMessage string) {
	code, message := respErrFor(err, fallbackMessage)
	msg.AddError(code, err.Error(), message)
}

func addMalformedErr[T any](msg *mc.Message[T], err error) {
	msg.AddError(mc.ErrCodeBadRequest, err.Error(), errMsgMalformed)
}
