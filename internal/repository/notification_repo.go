package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"taskmanage/internal/model"
	"taskmanage/pkg/metrics"
)

type NotificationRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewNotificationRepository(db *mongo.Database, logger *zap.Logger) *NotificationRepository {
	return &NotificationRepository{col: db.Collection("notifications"), logger: logger}
}

// Upsert keeps at most one notification per task id. A repeat save for the
// same task id merges onto the existing document, so the later fields win.
// Single atomic operation, no lookup-then-write window.
func (r *NotificationRepository) Upsert(ctx context.Context, taskID string, n model.Notification) (model.Notification, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("upsert", "notifications", time.Since(start)) }()

	r.logger.Debug("Upserting notification",
		zap.String("task_id", taskID),
		zap.String("email", n.Email),
	)

	n.TaskID = taskID
	n.ID = bson.ObjectID{}

	var stored model.Notification
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"taskId": taskID},
		bson.M{"$set": n},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		r.logger.Error("Failed to upsert notification", zap.Error(err), zap.String("task_id", taskID))
		return model.Notification{}, err
	}

	r.logger.Info("Notification saved", zap.String("task_id", taskID))
	return stored, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) (int64, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("delete", "notifications", time.Since(start)) }()

	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("Failed to delete notification", zap.Error(err), zap.String("notification_id", id))
		return 0, err
	}

	r.logger.Info("Notification deleted",
		zap.String("notification_id", id),
		zap.Int64("deleted", res.DeletedCount),
	)
	return res.DeletedCount, nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, email string) ([]model.Notification, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("list_by_recipient", "notifications", time.Since(start)) }()

	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		r.logger.Error("Failed to query notifications", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []model.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		r.logger.Error("Failed to decode notifications", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	r.logger.Info("Notifications listed successfully",
		zap.String("email", email),
		zap.Int("count", len(notifications)),
	)
	return notifications, nil
}
