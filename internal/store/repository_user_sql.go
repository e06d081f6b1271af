package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/models"
)

// IDGenerator produces identifiers for backends that do not assign them.
type IDGenerator interface {
	Generate() string
}

// sqlUserRepository is the relational implementation of [UserRepository].
// It works against the "users" table for both PostgreSQL and SQLite; the
// differences are captured by the [DB]'s dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sqlUserRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewSQLUserRepository constructs a [UserRepository] backed by the provided
// database connection. ids assigns identifiers to newly created users.
func NewSQLUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating sql user repository")
	return &sqlUserRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// FindOrCreateUser looks the username up and inserts a new row when it is
// missing. Both statements run in one transaction; two concurrent first
// requests for the same name may still create two users, which is allowed.
func (r *sqlUserRepository) FindOrCreateUser(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.FindOrCreateUser").Msg("error beginning transaction")
		return models.User{}, r.db.wrapError(err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	query, args, err := r.db.builder().
		Select("id", "username").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = tx.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username)
	switch {
	case err == nil:
		if err = tx.Commit(); err != nil {
			return models.User{}, r.db.wrapError(err, ErrCommitingTransaction)
		}
		return user, nil
	case !errors.Is(err, sql.ErrNoRows):
		log.Err(err).Str("func", "*sqlUserRepository.FindOrCreateUser").Msg("error looking up user by username")
		return models.User{}, r.db.wrapError(err, ErrScanningRow)
	}

	user = models.User{ID: r.ids.Generate(), Username: username}

	query, args, err = r.db.builder().
		Insert(usersTable).
		Columns("id", "username").
		Values(user.ID, user.Username).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.FindOrCreateUser").Msg("error inserting user")
		return models.User{}, r.db.wrapError(err, ErrExecutingQuery)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.FindOrCreateUser").Msg("error committing transaction")
		return models.User{}, r.db.wrapError(err, ErrCommitingTransaction)
	}

	log.Debug().Str("func", "*sqlUserRepository.FindOrCreateUser").Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (r *sqlUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("id", "username", "log").
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user models.User
		raw  []byte
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.FindUserByID").Msg("error scanning user")
		return models.User{}, r.db.wrapError(err, ErrScanningRow)
	}

	if user.Log, err = decodeLog(raw); err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.FindUserByID").Msg("error decoding exercise log")
		return models.User{}, err
	}

	return user, nil
}

func (r *sqlUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("id", "username").
		From(usersTable).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("error querying users")
		return nil, r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Username); err != nil {
			log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("error scanning user row")
			return nil, r.db.wrapError(err, ErrScanningRows)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("error iterating user rows")
		return nil, r.db.wrapError(err, ErrScanningRows)
	}

	return users, nil
}

// AppendExercise adds the entry with a single UPDATE so that concurrent
// appends are serialized by the row lock.
func (r *sqlUserRepository) AppendExercise(ctx context.Context, id string, exercise models.Exercise) (models.User, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(exercise)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrEncodingLog, err)
	}

	query, args, err := r.db.builder().
		Update(usersTable).
		Set("log", sq.Expr(r.db.dialect.appendLog, string(payload))).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, username").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.AppendExercise").Msg("error appending exercise")
		return models.User{}, r.db.wrapError(err, ErrExecutingQuery)
	}

	return user, nil
}

func (r *sqlUserRepository) DeleteAllUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().Delete(usersTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.DeleteAllUsers").Msg("error deleting users")
		return 0, r.db.wrapError(err, ErrExecutingQuery)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, r.db.wrapError(err, ErrExecutingQuery)
	}

	log.Info().Str("func", "*sqlUserRepository.DeleteAllUsers").Int64("deleted", deleted).Msg("all users deleted")
	return deleted, nil
}

func decodeLog(raw []byte) ([]models.Exercise, error) {
	entries := make([]models.Exercise, 0)
	if len(raw) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingLog, err)
	}
	return entries, nil
}
