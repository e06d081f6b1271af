package models

// UserSummary is the public projection of a [User] returned by the create
// and list endpoints.
type UserSummary struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// ExerciseRecord is returned after an exercise has been appended. It contains
// the owner's identity and the fields of the appended entry only.
type ExerciseRecord struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int64  `json:"duration"`
	Description string `json:"description"`
}

// ExerciseLog is the filtered view of a user's log.
//
// Count always equals len(Log), never the size of the log before filtering.
type ExerciseLog struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []Exercise `json:"log"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
