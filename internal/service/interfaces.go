package service

import (
	"context"

	"github.com/MKhiriev/exercise-tracker/models"
)

type UserService interface {
	// CreateOrFetchUser returns the user with the requested username,
	// creating it when it does not exist yet.
	CreateOrFetchUser(ctx context.Context, req models.CreateUserRequest) (models.UserSummary, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
}

type ExerciseService interface {
	AddExercise(ctx context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error)

	// GetLog returns the user's log filtered by the optional date range and
	// truncated to the optional limit.
	GetLog(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error)
}

type AdminService interface {
	// Reset deletes every user and returns how many were removed.
	Reset(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// CheckHealth reports whether the store answers.
	CheckHealth(ctx context.Context) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ExerciseServiceWrapper defines middleware composition for ExerciseService.
type ExerciseServiceWrapper interface {
	Wrap(ExerciseService) ExerciseService
}
