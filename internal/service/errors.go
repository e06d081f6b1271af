package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every input validation failure. The
	// specific reason is one of the validators package errors.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
