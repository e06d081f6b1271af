package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/mock"
	"github.com/MKhiriev/exercise-tracker/internal/store"
	"github.com/MKhiriev/exercise-tracker/internal/validators"
	"github.com/MKhiriev/exercise-tracker/models"
)

var fixedNow = time.Date(2024, time.March, 5, 23, 30, 0, 0, time.UTC)

func newTestExerciseSvc(t *testing.T) (ExerciseService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	inner := NewExerciseService(repo, logger.Nop()).(*exerciseService)
	inner.now = func() time.Time { return fixedNow }

	return NewExerciseValidationService().Wrap(inner), repo
}

// ── AddExercise ──────────────────────────────────────────────────────────────

func TestAddExercise_WithDate(t *testing.T) {
	svc, repo := newTestExerciseSvc(t)
	ctx := context.Background()

	repo.EXPECT().
		AppendExercise(ctx, "u-1", models.Exercise{Description: "run", Duration: 30, Date: "Mon Jan 01 2024"}).
		Return(models.User{ID: "u-1", Username: "fcc_test"}, nil)

	got, err := svc.AddExercise(ctx, models.AddExerciseRequest{
		UserID: "u-1", Description: "run", Duration: "30", Date: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExerciseRecord{
		ID:          "u-1",
		Username:    "fcc_test",
		Date:        "Mon Jan 01 2024",
		Duration:    30,
		Description: "run",
	}, got)
}

func TestAddExercise_DefaultsToToday(t *testing.T) {
	svc, repo := newTestExerciseSvc(t)

	repo.EXPECT().
		AppendExercise(gomock.Any(), "u-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e models.Exercise) (models.User, error) {
			assert.Equal(t, "Tue Mar 05 2024", e.Date)
			return models.User{ID: "u-1", Username: "fcc_test"}, nil
		})

	got, err := svc.AddExercise(context.Background(), models.AddExerciseRequest{
		UserID: "u-1", Description: "run", Duration: "30",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tue Mar 05 2024", got.Date)
}

func TestAddExercise_DefaultDateIsEvaluatedPerCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	inner := NewExerciseService(repo, logger.Nop()).(*exerciseService)
	days := []time.Time{fixedNow, fixedNow.AddDate(0, 0, 1)}
	inner.now = func() time.Time {
		d := days[0]
		days = days[1:]
		return d
	}

	var dates []string
	repo.EXPECT().AppendExercise(gomock.Any(), "u-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e models.Exercise) (models.User, error) {
			dates = append(dates, e.Date)
			return models.User{ID: "u-1"}, nil
		}).
		Times(2)

	req := models.AddExerciseRequest{UserID: "u-1", Description: "run", Duration: "1"}
	_, err := inner.AddExercise(context.Background(), req)
	require.NoError(t, err)
	_, err = inner.AddExercise(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tue Mar 05 2024", "Wed Mar 06 2024"}, dates)
}

func TestAddExercise_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     models.AddExerciseRequest
		wantErr error
	}{
		{"empty description", models.AddExerciseRequest{UserID: "u-1", Duration: "1"}, validators.ErrEmptyDescription},
		{"missing duration", models.AddExerciseRequest{UserID: "u-1", Description: "run"}, validators.ErrInvalidDuration},
		{"negative duration", models.AddExerciseRequest{UserID: "u-1", Description: "run", Duration: "-1"}, validators.ErrInvalidDuration},
		{"bad date", models.AddExerciseRequest{UserID: "u-1", Description: "run", Duration: "1", Date: "someday"}, validators.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestExerciseSvc(t)

			_, err := svc.AddExercise(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddExercise_InnerRejectsBadInputWithoutWrapper(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := NewExerciseService(mock.NewMockUserRepository(ctrl), logger.Nop())

	_, err := inner.AddExercise(context.Background(), models.AddExerciseRequest{UserID: "u-1", Description: "run", Duration: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = inner.AddExercise(context.Background(), models.AddExerciseRequest{UserID: "u-1", Description: "run", Duration: "1", Date: "nope"})
	assert.ErrorIs(t, err, validators.ErrInvalidDate)
}

func TestAddExercise_UnknownUser(t *testing.T) {
	svc, repo := newTestExerciseSvc(t)

	repo.EXPECT().AppendExercise(gomock.Any(), "missing", gomock.Any()).
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.AddExercise(context.Background(), models.AddExerciseRequest{
		UserID: "missing", Description: "run", Duration: "1",
	})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ── GetLog ───────────────────────────────────────────────────────────────────

var threeEntries = []models.Exercise{
	{Description: "a", Duration: 1, Date: "Mon Jan 01 2024"},
	{Description: "b", Duration: 2, Date: "Mon Jan 15 2024"},
	{Description: "c", Duration: 3, Date: "Thu Feb 01 2024"},
}

func TestGetLog_Filters(t *testing.T) {
	tests := []struct {
		name  string
		req   models.LogRequest
		wants []string
	}{
		{"no filters", models.LogRequest{}, []string{"a", "b", "c"}},
		{"from", models.LogRequest{From: "2024-01-10"}, []string{"b", "c"}},
		{"to", models.LogRequest{To: "2024-01-20"}, []string{"a", "b"}},
		{"from and to", models.LogRequest{From: "2024-01-10", To: "2024-01-20"}, []string{"b"}},
		{"inclusive bounds", models.LogRequest{From: "2024-01-01", To: "2024-02-01"}, []string{"a", "b", "c"}},
		{"limit", models.LogRequest{Limit: "1"}, []string{"a"}},
		{"limit after filter", models.LogRequest{From: "2024-01-10", Limit: "1"}, []string{"b"}},
		{"zero limit", models.LogRequest{Limit: "0"}, []string{}},
		{"limit above size", models.LogRequest{Limit: "10"}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestExerciseSvc(t)

			repo.EXPECT().FindUserByID(gomock.Any(), "u-1").
				Return(models.User{ID: "u-1", Username: "fcc_test", Log: threeEntries}, nil)

			tt.req.UserID = "u-1"
			got, err := svc.GetLog(context.Background(), tt.req)
			require.NoError(t, err)

			descriptions := make([]string, 0, len(got.Log))
			for _, e := range got.Log {
				descriptions = append(descriptions, e.Description)
			}
			assert.Equal(t, tt.wants, descriptions)
			assert.Equal(t, len(got.Log), got.Count)
			assert.Equal(t, "u-1", got.ID)
			assert.Equal(t, "fcc_test", got.Username)
			assert.NotNil(t, got.Log)
		})
	}
}

func TestGetLog_CanonicalDateBounds(t *testing.T) {
	entries := []models.Exercise{
		{Description: "first", Duration: 10, Date: "Mon Jan 01 2024"},
		{Description: "middle", Duration: 20, Date: "Wed Jan 03 2024"},
		{Description: "last", Duration: 30, Date: "Fri Jan 05 2024"},
	}

	tests := []struct {
		name  string
		req   models.LogRequest
		wants []models.Exercise
	}{
		{"from", models.LogRequest{From: "Jan 02 2024"}, entries[1:]},
		{"to", models.LogRequest{To: "Jan 03 2024"}, entries[:2]},
		{"from and to", models.LogRequest{From: "Jan 02 2024", To: "Jan 04 2024"}, entries[1:2]},
		{"limit only", models.LogRequest{Limit: "1"}, entries[:1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestExerciseSvc(t)

			repo.EXPECT().FindUserByID(gomock.Any(), "u-1").
				Return(models.User{ID: "u-1", Username: "fcc_test", Log: entries}, nil)

			tt.req.UserID = "u-1"
			got, err := svc.GetLog(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wants, got.Log)
			assert.Equal(t, len(tt.wants), got.Count)
		})
	}
}

func TestGetLog_UnknownUser(t *testing.T) {
	svc, repo := newTestExerciseSvc(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "missing").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetLog(context.Background(), models.LogRequest{UserID: "missing"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestGetLog_EmptyLog(t *testing.T) {
	svc, repo := newTestExerciseSvc(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "u-1").
		Return(models.User{ID: "u-1", Username: "fcc_test"}, nil)

	got, err := svc.GetLog(context.Background(), models.LogRequest{UserID: "u-1"})
	require.NoError(t, err)
	assert.Zero(t, got.Count)
	assert.NotNil(t, got.Log)
}

func TestGetLog_InvalidQuery(t *testing.T) {
	tests := []struct {
		name    string
		req     models.LogRequest
		wantErr error
	}{
		{"bad from", models.LogRequest{UserID: "u-1", From: "x"}, validators.ErrInvalidFromDate},
		{"bad to", models.LogRequest{UserID: "u-1", To: "x"}, validators.ErrInvalidToDate},
		{"bad limit", models.LogRequest{UserID: "u-1", Limit: "-2"}, validators.ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestExerciseSvc(t)

			_, err := svc.GetLog(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
