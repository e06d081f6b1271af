package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/MKhiriev/exercise-tracker/internal/config"
	"github.com/MKhiriev/exercise-tracker/internal/logger"
)

const (
	// defaultMongoDatabase is used when neither the config nor the
	// connection string name a database.
	defaultMongoDatabase = "exercise_tracker"

	usersCollection = "users"
)

// MongoDB holds a connected client and the database the users live in.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	name, err := mongoDatabaseName(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("invalid mongodb connection string")
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", name).Msg("connected to database successfully")

	return &MongoDB{
		client: client,
		db:     client.Database(name),
		logger: log,
	}, nil
}

// Users returns the collection holding user documents.
func (m *MongoDB) Users() *mongo.Collection {
	return m.db.Collection(usersCollection)
}

// EnsureIndexes creates the username lookup index. Usernames are not unique,
// so the index is not either.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("users_username"),
	})
	if err != nil {
		return classifyMongoError(err, "ensure indexes")
	}
	return nil
}

// Ping implements [HealthChecker].
func (m *MongoDB) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// mongoDatabaseName picks the configured name, then the path of the
// connection string, then [defaultMongoDatabase].
func mongoDatabaseName(cfg config.DB) (string, error) {
	if cfg.Name != "" {
		return cfg.Name, nil
	}

	cs, err := connstring.ParseAndValidate(cfg.DSN)
	if err != nil {
		return "", fmt.Errorf("parse mongodb uri: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}

	return defaultMongoDatabase, nil
}
