package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/exercise-tracker/internal/config"
	"github.com/MKhiriev/exercise-tracker/internal/store"
)

func TestReset_OK(t *testing.T) {
	called := false
	svc := newTestServices()
	svc.AdminService = &mockAdminService{
		resetFn: func(context.Context) (int64, error) {
			called = true
			return 3, nil
		},
	}

	rr := serve(newTestRouter(t, svc, config.App{EnableReset: true}), http.MethodGet, "/api/reset", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
	assert.Equal(t, "Database cleared!", rr.Body.String())
}

func TestReset_Error(t *testing.T) {
	svc := newTestServices()
	svc.AdminService = &mockAdminService{
		resetFn: func(context.Context) (int64, error) {
			return 0, store.ErrStoreUnavailable
		},
	}

	rr := serve(newTestRouter(t, svc, config.App{EnableReset: true}), http.MethodGet, "/api/reset", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHealth_OK(t *testing.T) {
	rr := serve(newTestRouter(t, newTestServices(), config.App{}), http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test-version"}`, rr.Body.String())
}

func TestHealth_Unavailable(t *testing.T) {
	svc := newTestServices()
	svc.AppInfoService = &mockAppInfoService{version: "1.0.0", healthErr: errors.New("ping failed")}

	// legacy mode does not change the health answer
	rr := serve(newTestRouter(t, svc, config.App{LegacyErrors: true}), http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unavailable","version":"1.0.0"}`, rr.Body.String())
}
