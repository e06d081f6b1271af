package models

// User is a tracked person together with the ordered log of exercises they
// have recorded. The log only ever grows: entries are appended at the end and
// never edited or removed.
type User struct {
	// ID is the store-assigned identifier. It is immutable once the user
	// has been created.
	ID string `json:"_id"`

	// Username is the name supplied on creation. Not unique by contract.
	Username string `json:"username"`

	// Log holds exercises in append order.
	Log []Exercise `json:"log,omitempty"`
}

// Summary projects the user to its public identity without the log.
func (u User) Summary() UserSummary {
	return UserSummary{
		Username: u.Username,
		ID:       u.ID,
	}
}
