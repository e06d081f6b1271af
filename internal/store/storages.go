package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/exercise-tracker/internal/config"
	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/utils"
)

// Storages bundles the repositories of the selected backend together with
// its connection lifecycle.
type Storages struct {
	UserRepository UserRepository

	Backend config.Backend

	health  HealthChecker
	closeFn func(ctx context.Context) error
}

// NewStorages connects to the backend selected by cfg.DB's DSN scheme and
// prepares its schema (SQL migrations or Mongo indexes).
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log = log.WithComponent("store")
	ids := utils.NewUUIDGenerator()
	backend := cfg.DB.Backend()

	switch backend {
	case config.BackendMongo:
		db, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.EnsureIndexes(ctx); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error ensuring mongo indexes")
			_ = db.Close(context.WithoutCancel(ctx))
			return nil, err
		}
		return &Storages{
			UserRepository: NewMongoUserRepository(db.Users(), log),
			Backend:        backend,
			health:         db,
			closeFn:        db.Close,
		}, nil

	case config.BackendPostgres, config.BackendSQLite:
		var (
			db  *DB
			err error
		)
		if backend == config.BackendPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, err
		}
		return &Storages{
			UserRepository: NewSQLUserRepository(db, ids, log),
			Backend:        backend,
			health:         db,
			closeFn:        func(context.Context) error { return db.Close() },
		}, nil

	case config.BackendMemory:
		return &Storages{
			UserRepository: NewMemoryUserRepository(ids, log),
			Backend:        backend,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.DB.DSN)
}

// Ping implements [HealthChecker]. Backends without a connection are always
// healthy.
func (s *Storages) Ping(ctx context.Context) error {
	if s.health == nil {
		return nil
	}
	return s.health.Ping(ctx)
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}
