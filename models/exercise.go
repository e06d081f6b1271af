package models

// Exercise is a single entry of a user's log.
type Exercise struct {
	// Description is a free-form, non-empty label (e.g. "run").
	Description string `json:"description"`

	// Duration is a non-negative whole number, usually minutes.
	Duration int64 `json:"duration"`

	// Date is the canonical calendar date string, e.g. "Mon Jan 01 2024".
	Date string `json:"date"`
}
