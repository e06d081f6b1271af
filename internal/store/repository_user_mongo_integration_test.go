//go:build integration

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/MKhiriev/exercise-tracker/internal/config"
	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/models"
)

func TestMongoIntegration(t *testing.T) {
	ctx := context.Background()

	ctr, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: uri, Name: "tracker_test"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	require.Equal(t, config.BackendMongo, s.Backend)
	require.NoError(t, s.Ping(ctx))

	repo := s.UserRepository

	u, err := repo.FindOrCreateUser(ctx, "fcc_test")
	require.NoError(t, err)
	again, err := repo.FindOrCreateUser(ctx, "fcc_test")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AppendExercise(ctx, u.ID, models.Exercise{Description: "run", Duration: int64(i), Date: "Mon Jan 01 2024"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	full, err := repo.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, full.Log, n)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{u}, users)

	deleted, err := repo.DeleteAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
