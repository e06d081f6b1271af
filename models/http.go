package models

// CreateUserRequest carries the input of the create-or-fetch user operation.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// AddExerciseRequest carries the raw, not yet validated input of the append
// exercise operation. Fields stay strings because they arrive as form values;
// they are validated and converted by the service layer.
type AddExerciseRequest struct {
	// UserID is taken from the request path, never from the body.
	UserID string `json:"-"`

	Description string `json:"description"`

	// Duration must parse as a non-negative integer.
	Duration string `json:"duration"`

	// Date is optional. When empty the current day is used.
	Date string `json:"date"`
}

// LogRequest carries the raw query of the fetch log operation.
// Empty strings mean "not set".
type LogRequest struct {
	UserID string
	From   string
	To     string
	Limit  string
}
