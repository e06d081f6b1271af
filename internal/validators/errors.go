package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUserID      = errors.New("user id is required")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidDuration  = errors.New("duration must be a non-negative integer")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidFromDate  = errors.New("invalid from date")
	ErrInvalidToDate    = errors.New("invalid to date")
	ErrInvalidLimit     = errors.New("limit must be a non-negative integer")
)
