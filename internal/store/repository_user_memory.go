package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/models"
)

// memoryUserRepository keeps users in process memory. It backs the
// "memory://" DSN and the end-to-end tests; nothing survives a restart.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string
	ids   IDGenerator
}

func NewMemoryUserRepository(ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users: make(map[string]*models.User),
		ids:   ids,
	}
}

func (r *memoryUserRepository) FindOrCreateUser(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if u := r.users[id]; u.Username == username {
			return models.User{ID: u.ID, Username: u.Username}, nil
		}
	}

	u := &models.User{ID: r.ids.Generate(), Username: username, Log: make([]models.Exercise, 0)}
	r.users[u.ID] = u
	r.order = append(r.order, u.ID)

	return models.User{ID: u.ID, Username: u.Username}, nil
}

func (r *memoryUserRepository) FindUserByID(_ context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	entries := make([]models.Exercise, len(u.Log))
	copy(entries, u.Log)

	return models.User{ID: u.ID, Username: u.Username, Log: entries}, nil
}

func (r *memoryUserRepository) ListUsers(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.users[id]
		users = append(users, models.User{ID: u.ID, Username: u.Username})
	}

	return users, nil
}

func (r *memoryUserRepository) AppendExercise(_ context.Context, id string, exercise models.Exercise) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	u.Log = append(u.Log, exercise)

	return models.User{ID: u.ID, Username: u.Username}, nil
}

func (r *memoryUserRepository) DeleteAllUsers(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := int64(len(r.users))
	r.users = make(map[string]*models.User)
	r.order = nil

	return deleted, nil
}
