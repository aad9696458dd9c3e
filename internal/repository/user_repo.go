package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"taskmanage/internal/model"
	"taskmanage/pkg/metrics"
)

type UserRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewUserRepository(db *mongo.Database, logger *zap.Logger) *UserRepository {
	return &UserRepository{col: db.Collection("users"), logger: logger}
}

// CreateIfAbsent inserts the profile when no document exists for the email
// and returns the stored document either way. The $setOnInsert upsert is a
// single atomic operation, so a concurrent Merge for the same email cannot
// interleave with it.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, email string, u model.User) (model.User, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("create_if_absent", "users", time.Since(start)) }()

	r.logger.Debug("Saving user if absent", zap.String("email", email))

	u.Email = email
	u.ID = bson.ObjectID{}

	var stored model.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$setOnInsert": u},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		r.logger.Error("Failed to save user", zap.Error(err), zap.String("email", email))
		return model.User{}, err
	}

	r.logger.Info("User saved", zap.String("email", email))
	return stored, nil
}

// Merge applies every non-empty field of the profile onto the document for
// the email, inserting one when absent.
func (r *UserRepository) Merge(ctx context.Context, email string, u model.User) (model.User, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("merge", "users", time.Since(start)) }()

	r.logger.Debug("Merging user", zap.String("email", email), zap.String("status", u.Status))

	u.Email = email
	u.ID = bson.ObjectID{}

	var stored model.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$set": u},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		r.logger.Error("Failed to merge user", zap.Error(err), zap.String("email", email))
		return model.User{}, err
	}

	r.logger.Info("User merged", zap.String("email", email))
	return stored, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("find_by_email", "users", time.Since(start)) }()

	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, ErrNotFound
		}
		r.logger.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return model.User{}, err
	}
	return u, nil
}
