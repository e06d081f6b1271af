package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/models"
)

// userDocument is the stored shape of a user: the log is embedded so that an
// append is a single $push.
type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Log      []exerciseDocument `bson:"log,omitempty"`
}

type exerciseDocument struct {
	Description string `bson:"description"`
	Duration    int64  `bson:"duration"`
	Date        string `bson:"date"`
}

func (d userDocument) toModel(withLog bool) models.User {
	user := models.User{ID: d.ID.Hex(), Username: d.Username}
	if !withLog {
		return user
	}

	user.Log = make([]models.Exercise, 0, len(d.Log))
	for _, e := range d.Log {
		user.Log = append(user.Log, models.Exercise{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}
	return user
}

// withoutLog projects documents down to their identity.
var withoutLog = bson.D{{Key: "log", Value: 0}}

// mongoUserRepository is the MongoDB implementation of [UserRepository].
type mongoUserRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

func NewMongoUserRepository(users *mongo.Collection, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		users:  users,
		logger: logger,
	}
}

// FindOrCreateUser upserts on username, so the lookup and the insert are one
// server-side operation. When several documents share the username the
// oldest one wins.
func (r *mongoUserRepository) FindOrCreateUser(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(withoutLog)

	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "username", Value: username},
		{Key: "log", Value: bson.A{}},
	}}}

	var doc userDocument
	err := r.users.FindOneAndUpdate(ctx, bson.D{{Key: "username", Value: username}}, update, opts).Decode(&doc)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.FindOrCreateUser").Msg("error upserting user")
		return models.User{}, classifyMongoError(err, "find or create user")
	}

	return doc.toModel(false), nil
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	var doc userDocument
	if err = r.users.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return models.User{}, classifyMongoError(err, "find user")
	}

	return doc.toModel(true), nil
}

func (r *mongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.users.Find(ctx, bson.D{}, options.Find().SetProjection(withoutLog))
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error querying users")
		return nil, classifyMongoError(err, "list users")
	}

	var docs []userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error decoding users")
		return nil, classifyMongoError(err, "list users")
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel(false))
	}
	return users, nil
}

// AppendExercise pushes the entry and returns the owner in one round trip.
func (r *mongoUserRepository) AppendExercise(ctx context.Context, id string, exercise models.Exercise) (models.User, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	update := bson.D{{Key: "$push", Value: bson.D{{Key: "log", Value: exerciseDocument{
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}}}}}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutLog)

	var doc userDocument
	err = r.users.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.AppendExercise").Str("user_id", id).Msg("error appending exercise")
		return models.User{}, classifyMongoError(err, "append exercise")
	}

	return doc.toModel(false), nil
}

func (r *mongoUserRepository) DeleteAllUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.users.DeleteMany(ctx, bson.D{})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.DeleteAllUsers").Msg("error deleting users")
		return 0, classifyMongoError(err, "delete users")
	}

	log.Info().Str("func", "*mongoUserRepository.DeleteAllUsers").Int64("deleted", result.DeletedCount).Msg("all users deleted")
	return result.DeletedCount, nil
}
