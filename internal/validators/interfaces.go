// Package validators checks exercise tracker requests before they reach the
// store and converts the raw form values (durations, date bounds, limits)
// into typed values.
//
// [Validator] is implemented by [ExerciseTrackerValidator]. Callers may
// restrict a check to some fields with the Field* constants, e.g.
// Validate(ctx, req, FieldUserID) checks only the path id.
package validators

import "context"

// Validator checks a request value. When fields is empty every field of the
// request is checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
