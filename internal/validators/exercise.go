package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/exercise-tracker/internal/calendar"
	"github.com/MKhiriev/exercise-tracker/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the user identifier taken from the request path.
	FieldUserID = "user_id"

	// FieldUsername targets the username of a create-user request.
	FieldUsername = "username"

	// FieldDescription targets the exercise label.
	FieldDescription = "description"

	// FieldDuration targets the exercise duration.
	FieldDuration = "duration"

	// FieldDate targets the optional exercise date.
	FieldDate = "date"

	// FieldFrom targets the lower bound of a log query.
	FieldFrom = "from"

	// FieldTo targets the upper bound of a log query.
	FieldTo = "to"

	// FieldLimit targets the maximum number of log entries returned.
	FieldLimit = "limit"
)

// ExerciseTrackerValidator checks requests of the exercise tracker API.
type ExerciseTrackerValidator struct {
}

func NewExerciseTrackerValidator() Validator {
	return &ExerciseTrackerValidator{}
}

func (v *ExerciseTrackerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, *value, fields...)

	case models.AddExerciseRequest:
		return v.validateAddExerciseRequest(ctx, value, fields...)
	case *models.AddExerciseRequest:
		return v.validateAddExerciseRequest(ctx, *value, fields...)

	case models.LogRequest:
		return v.validateLogRequest(ctx, value, fields...)
	case *models.LogRequest:
		return v.validateLogRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ExerciseTrackerValidator) validateCreateUserRequest(_ context.Context, req models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrEmptyUsername
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ExerciseTrackerValidator) validateAddExerciseRequest(_ context.Context, req models.AddExerciseRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDescription, FieldDuration, FieldDate}
	}

	for _, field := range fields {
		switch field {
		case FieldUserID:
			if strings.TrimSpace(req.UserID) == "" {
				return ErrEmptyUserID
			}
		case FieldDescription:
			if strings.TrimSpace(req.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldDuration:
			if _, err := ParseDuration(req.Duration); err != nil {
				return err
			}
		case FieldDate:
			if strings.TrimSpace(req.Date) == "" {
				continue
			}
			if _, err := calendar.Parse(req.Date); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ExerciseTrackerValidator) validateLogRequest(_ context.Context, req models.LogRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldFrom, FieldTo, FieldLimit}
	}

	for _, field := range fields {
		switch field {
		case FieldUserID:
			if strings.TrimSpace(req.UserID) == "" {
				return ErrEmptyUserID
			}
		case FieldFrom:
			if _, err := ParseBound(req.From, ErrInvalidFromDate); err != nil {
				return err
			}
		case FieldTo:
			if _, err := ParseBound(req.To, ErrInvalidToDate); err != nil {
				return err
			}
		case FieldLimit:
			if _, _, err := ParseLimit(req.Limit); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
