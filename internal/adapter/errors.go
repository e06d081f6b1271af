package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrLegacyFailure is returned when a server running in legacy error
	// mode answers 200 with an error body.
	ErrLegacyFailure = errors.New("request failed")
)
