package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/exercise-tracker/internal/config"
	"github.com/MKhiriev/exercise-tracker/internal/service"
	"github.com/MKhiriev/exercise-tracker/internal/store"
	"github.com/MKhiriev/exercise-tracker/models"
)

// ─────────────────────────────────────────────
// POST /api/users/{_id}/exercises
// ─────────────────────────────────────────────

func TestAddExercise_Form(t *testing.T) {
	var got models.AddExerciseRequest
	svc := newTestServices()
	svc.ExerciseService = &mockExerciseService{
		addFn: func(_ context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error) {
			got = req
			return models.ExerciseRecord{
				ID:          req.UserID,
				Username:    "fcc_test",
				Date:        "Mon Jan 01 1990",
				Duration:    60,
				Description: req.Description,
			}, nil
		},
	}

	rr := serve(newTestRouter(t, svc, config.App{}), http.MethodPost, "/api/users/u-1/exercises",
		"description=test&duration=60&date=1990-01-01", "application/x-www-form-urlencoded")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.AddExerciseRequest{
		UserID:      "u-1",
		Description: "test",
		Duration:    "60",
		Date:        "1990-01-01",
	}, got)
	assert.JSONEq(t,
		`{"_id":"u-1","username":"fcc_test","date":"Mon Jan 01 1990","duration":60,"description":"test"}`,
		rr.Body.String())
}

func TestAddExercise_JSONNumberDuration(t *testing.T) {
	var got models.AddExerciseRequest
	svc := newTestServices()
	svc.ExerciseService = &mockExerciseService{
		addFn: func(_ context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error) {
			got = req
			return models.ExerciseRecord{}, nil
		},
	}

	rr := serve(newTestRouter(t, svc, config.App{}), http.MethodPost, "/api/users/u-1/exercises",
		`{"description":"run","duration":30}`, "application/json")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "30", got.Duration)
	assert.Equal(t, "run", got.Description)
	assert.Empty(t, got.Date)
}

func TestAddExercise_IDFromPathOnly(t *testing.T) {
	var got models.AddExerciseRequest
	svc := newTestServices()
	svc.ExerciseService = &mockExerciseService{
		addFn: func(_ context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error) {
			got = req
			return models.ExerciseRecord{}, nil
		},
	}

	serve(newTestRouter(t, svc, config.App{}), http.MethodPost, "/api/users/from-path/exercises",
		"_id=from-body&description=run&duration=1", "application/x-www-form-urlencoded")

	assert.Equal(t, "from-path", got.UserID)
}

func TestAddExercise_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown user", store.ErrUserNotFound, http.StatusNotFound},
		{"invalid data", fmt.Errorf("%w: bad duration", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"store down", fmt.Errorf("%w: dial", store.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"query failed", store.ErrExecutingQuery, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestServices()
			svc.ExerciseService = &mockExerciseService{
				addFn: func(context.Context, models.AddExerciseRequest) (models.ExerciseRecord, error) {
					return models.ExerciseRecord{}, tt.err
				},
			}

			rr := serve(newTestRouter(t, svc, config.App{}), http.MethodPost, "/api/users/u-1/exercises",
				"description=run&duration=1", "application/x-www-form-urlencoded")

			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

// ─────────────────────────────────────────────
// GET /api/users/{_id}/logs
// ─────────────────────────────────────────────

func TestGetLogs_PassesQuery(t *testing.T) {
	var got models.LogRequest
	svc := newTestServices()
	svc.ExerciseService = &mockExerciseService{
		getLogFn: func(_ context.Context, req models.LogRequest) (models.ExerciseLog, error) {
			got = req
			return models.ExerciseLog{
				ID:       req.UserID,
				Username: "fcc_test",
				Count:    1,
				Log:      []models.Exercise{{Description: "run", Duration: 30, Date: "Mon Jan 01 1990"}},
			}, nil
		},
	}

	rr := serve(newTestRouter(t, svc, config.App{}), http.MethodGet,
		"/api/users/u-1/logs?from=1989-12-31&to=1990-01-04&limit=1", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.LogRequest{UserID: "u-1", From: "1989-12-31", To: "1990-01-04", Limit: "1"}, got)
	assert.JSONEq(t,
		`{"_id":"u-1","username":"fcc_test","count":1,"log":[{"description":"run","duration":30,"date":"Mon Jan 01 1990"}]}`,
		rr.Body.String())
}

func TestGetLogs_EmptyLogIsArray(t *testing.T) {
	svc := newTestServices()
	svc.ExerciseService = &mockExerciseService{
		getLogFn: func(_ context.Context, req models.LogRequest) (models.ExerciseLog, error) {
			return models.ExerciseLog{ID: req.UserID, Username: "fcc_test"}, nil
		},
	}

	rr := serve(newTestRouter(t, svc, config.App{}), http.MethodGet, "/api/users/u-1/logs", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"_id":"u-1","username":"fcc_test","count":0,"log":[]}`, rr.Body.String())
}

func TestGetLogs_UnknownUser(t *testing.T) {
	svc := newTestServices()
	svc.ExerciseService = &mockExerciseService{
		getLogFn: func(context.Context, models.LogRequest) (models.ExerciseLog, error) {
			return models.ExerciseLog{}, store.ErrUserNotFound
		},
	}

	rr := serve(newTestRouter(t, svc, config.App{}), http.MethodGet, "/api/users/missing/logs", "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rr.Body.String())
}

func TestGetLogs_UnknownUserLegacy(t *testing.T) {
	svc := newTestServices()
	svc.ExerciseService = &mockExerciseService{
		getLogFn: func(context.Context, models.LogRequest) (models.ExerciseLog, error) {
			return models.ExerciseLog{}, store.ErrUserNotFound
		},
	}

	rr := serve(newTestRouter(t, svc, config.App{LegacyErrors: true}), http.MethodGet, "/api/users/missing/logs", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"error":"Database error"}`, rr.Body.String())
}
