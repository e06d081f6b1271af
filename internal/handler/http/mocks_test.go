package http

import (
	"context"

	"github.com/MKhiriev/exercise-tracker/models"
)

// ─────────────────────────────────────────────
// hand-written service mocks
// ─────────────────────────────────────────────

type mockUserService struct {
	createOrFetchFn func(ctx context.Context, req models.CreateUserRequest) (models.UserSummary, error)
	listFn          func(ctx context.Context) ([]models.UserSummary, error)
}

func (m *mockUserService) CreateOrFetchUser(ctx context.Context, req models.CreateUserRequest) (models.UserSummary, error) {
	if m.createOrFetchFn != nil {
		return m.createOrFetchFn(ctx, req)
	}
	return models.UserSummary{}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockExerciseService struct {
	addFn    func(ctx context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error)
	getLogFn func(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error)
}

func (m *mockExerciseService) AddExercise(ctx context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error) {
	if m.addFn != nil {
		return m.addFn(ctx, req)
	}
	return models.ExerciseRecord{}, nil
}

func (m *mockExerciseService) GetLog(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error) {
	if m.getLogFn != nil {
		return m.getLogFn(ctx, req)
	}
	return models.ExerciseLog{}, nil
}

type mockAdminService struct {
	resetFn func(ctx context.Context) (int64, error)
}

func (m *mockAdminService) Reset(ctx context.Context) (int64, error) {
	if m.resetFn != nil {
		return m.resetFn(ctx)
	}
	return 0, nil
}

type mockAppInfoService struct {
	version   string
	healthErr error
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

func (m *mockAppInfoService) CheckHealth(ctx context.Context) error {
	return m.healthErr
}
