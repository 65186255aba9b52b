package service

import (
	"errors"

	"github.com/riyaziyyat/exam-backend/internal/store"
)

// Domain errors returned by services. Handlers map them to response codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrHasDependents      = errors.New("record is still referenced by other records")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
)

// translate maps store sentinels onto domain errors and passes anything else
// (including store.ErrUnavailable) through unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrDuplicate):
		return ErrConflict
	default:
		return err
	}
}
