package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/exercise-tracker/internal/calendar"
	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/store"
	"github.com/MKhiriev/exercise-tracker/internal/validators"
	"github.com/MKhiriev/exercise-tracker/models"
)

type exerciseService struct {
	userRepository store.UserRepository

	// now is read on every append so the default date is never stale.
	now func() time.Time

	logger *logger.Logger
}

func NewExerciseService(userRepository store.UserRepository, logger *logger.Logger) ExerciseService {
	return &exerciseService{
		userRepository: userRepository,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *exerciseService) AddExercise(ctx context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error) {
	duration, err := validators.ParseDuration(req.Duration)
	if err != nil {
		return models.ExerciseRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	date := calendar.Today(s.now())
	if strings.TrimSpace(req.Date) != "" {
		if date, err = calendar.Normalize(req.Date); err != nil {
			return models.ExerciseRecord{}, fmt.Errorf("%w: %w: %q", ErrInvalidDataProvided, validators.ErrInvalidDate, req.Date)
		}
	}

	exercise := models.Exercise{
		Description: req.Description,
		Duration:    duration,
		Date:        date,
	}

	owner, err := s.userRepository.AppendExercise(ctx, req.UserID, exercise)
	if err != nil {
		return models.ExerciseRecord{}, fmt.Errorf("append exercise: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*exerciseService.AddExercise").
		Str("user_id", owner.ID).
		Str("date", exercise.Date).
		Msg("exercise appended")

	return models.ExerciseRecord{
		ID:          owner.ID,
		Username:    owner.Username,
		Date:        exercise.Date,
		Duration:    exercise.Duration,
		Description: exercise.Description,
	}, nil
}

func (s *exerciseService) GetLog(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error) {
	filter, err := newLogFilter(req)
	if err != nil {
		return models.ExerciseLog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByID(ctx, req.UserID)
	if err != nil {
		return models.ExerciseLog{}, fmt.Errorf("find user: %w", err)
	}

	entries := filter.apply(user.Log)

	return models.ExerciseLog{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(entries),
		Log:      entries,
	}, nil
}
