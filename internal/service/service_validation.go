package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/exercise-tracker/internal/validators"
	"github.com/MKhiriev/exercise-tracker/models"
)

// UserValidationService rejects malformed input before it reaches the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewExerciseTrackerValidator(),
	}
}

func (v *UserValidationService) CreateOrFetchUser(ctx context.Context, req models.CreateUserRequest) (models.UserSummary, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserSummary{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateOrFetchUser(ctx, req)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// ExerciseValidationService rejects malformed input before it reaches the
// wrapped ExerciseService.
type ExerciseValidationService struct {
	inner     ExerciseService
	validator validators.Validator
}

func NewExerciseValidationService() ExerciseServiceWrapper {
	return &ExerciseValidationService{
		validator: validators.NewExerciseTrackerValidator(),
	}
}

func (v *ExerciseValidationService) AddExercise(ctx context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error) {
	// date is optional; when present it has to parse
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ExerciseRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddExercise(ctx, req)
}

func (v *ExerciseValidationService) GetLog(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ExerciseLog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetLog(ctx, req)
}

func (v *ExerciseValidationService) Wrap(wrapped ExerciseService) ExerciseService {
	v.inner = wrapped
	return v
}
