package store

import (
	"context"

	"github.com/MKhiriev/exercise-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users together with their embedded exercise logs.
//
// Every backend implements AppendExercise as a single atomic store operation,
// so concurrent appends to the same user never lose entries.
type UserRepository interface {
	// FindOrCreateUser returns the user with exactly this username, creating
	// one with an empty log when none exists. The returned user has no log.
	FindOrCreateUser(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the user including the full log, or
	// [ErrUserNotFound].
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// ListUsers returns every user without logs, in the store's natural order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// AppendExercise adds exercise at the end of the user's log and returns
	// the owner (without log), or [ErrUserNotFound].
	AppendExercise(ctx context.Context, id string, exercise models.Exercise) (models.User, error)

	// DeleteAllUsers removes every user and returns how many were deleted.
	DeleteAllUsers(ctx context.Context) (int64, error)
}

// HealthChecker reports whether the underlying store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
// Retryable errors are surfaced to callers as [ErrStoreUnavailable].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
