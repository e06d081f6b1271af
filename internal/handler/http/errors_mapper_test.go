package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/service"
	"github.com/MKhiriev/exercise-tracker/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"wrapped invalid data", fmt.Errorf("%w: empty username", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"invalid body", fmt.Errorf("%w: unexpected EOF", ErrInvalidRequestBody), http.StatusBadRequest},
		{"not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("find: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"store unavailable", fmt.Errorf("%w: %w", store.ErrStoreUnavailable, errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"query", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	validation := fmt.Errorf("%w: duration must be a non-negative integer", service.ErrInvalidDataProvided)
	assert.Equal(t, validation.Error(), errorMessage(validation, http.StatusBadRequest))

	assert.Equal(t, "user not found", errorMessage(fmt.Errorf("x: %w", store.ErrUserNotFound), http.StatusNotFound))
	assert.Equal(t, "store unavailable", errorMessage(errors.New("dial tcp 10.0.0.1"), http.StatusServiceUnavailable))

	// internal details stay in the log
	assert.Equal(t, "Internal Server Error", errorMessage(errors.New("pq: relation users"), http.StatusInternalServerError))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		legacy     bool
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        store.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"user not found"}`,
		},
		{
			name:       "internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name:       "legacy not found",
			legacy:     true,
			err:        store.ErrUserNotFound,
			wantStatus: http.StatusOK,
			wantBody:   `{"error":"Database error"}`,
		},
		{
			name:       "legacy validation",
			legacy:     true,
			err:        service.ErrInvalidDataProvided,
			wantStatus: http.StatusOK,
			wantBody:   `{"error":"Database error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{legacyErrors: tt.legacy, logger: logger.Nop()}

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			h.writeError(rr, req, tt.err, "TestWriteError")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
