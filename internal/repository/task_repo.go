package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"taskmanage/internal/model"
	"taskmanage/pkg/metrics"
)

type TaskRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewTaskRepository(db *mongo.Database, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{col: db.Collection("tasks"), logger: logger}
}

func (r *TaskRepository) Insert(ctx context.Context, t model.Task) (string, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("insert", "tasks", time.Since(start)) }()

	r.logger.Debug("Inserting task",
		zap.String("email", t.Email),
		zap.String("title", t.Title),
	)

	t.ID = bson.NewObjectID()
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		r.logger.Error("Failed to insert task", zap.Error(err), zap.String("email", t.Email))
		return "", err
	}

	id := t.ID.Hex()
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		id = oid.Hex()
	}
	r.logger.Info("Task inserted successfully",
		zap.String("task_id", id),
		zap.String("email", t.Email),
	)
	return id, nil
}

// UpdateFields replaces exactly title, description, deadline and priority on
// the matching document. Status and owner email are never touched here.
func (r *TaskRepository) UpdateFields(ctx context.Context, id string, t model.Task) (int64, int64, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("update_fields", "tasks", time.Since(start)) }()

	oid, err := parseObjectID(id)
	if err != nil {
		return 0, 0, err
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"title":       t.Title,
			"description": t.Description,
			"deadline":    t.Deadline,
			"priority":    t.Priority,
		}},
	)
	if err != nil {
		r.logger.Error("Failed to update task", zap.Error(err), zap.String("task_id", id))
		return 0, 0, err
	}

	r.logger.Info("Task updated",
		zap.String("task_id", id),
		zap.Int64("matched", res.MatchedCount),
	)
	return res.MatchedCount, res.ModifiedCount, nil
}

// SetStatus patches only the status field. There is deliberately no upsert:
// a status patch for an unknown id must not create a stub task.
func (r *TaskRepository) SetStatus(ctx context.Context, id, status string) (int64, int64, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("set_status", "tasks", time.Since(start)) }()

	oid, err := parseObjectID(id)
	if err != nil {
		return 0, 0, err
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		r.logger.Error("Failed to update task status", zap.Error(err), zap.String("task_id", id))
		return 0, 0, err
	}

	r.logger.Info("Task status updated",
		zap.String("task_id", id),
		zap.String("status", status),
		zap.Int64("matched", res.MatchedCount),
	)
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) (int64, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("delete", "tasks", time.Since(start)) }()

	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("Failed to delete task", zap.Error(err), zap.String("task_id", id))
		return 0, err
	}

	r.logger.Info("Task deleted",
		zap.String("task_id", id),
		zap.Int64("deleted", res.DeletedCount),
	)
	return res.DeletedCount, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (model.Task, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("find_by_id", "tasks", time.Since(start)) }()

	oid, err := parseObjectID(id)
	if err != nil {
		return model.Task{}, err
	}

	var t model.Task
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Task{}, ErrNotFound
		}
		r.logger.Error("Failed to find task", zap.Error(err), zap.String("task_id", id))
		return model.Task{}, err
	}
	return t, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, email string) ([]model.Task, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("list_by_owner", "tasks", time.Since(start)) }()

	r.logger.Debug("Listing tasks for owner", zap.String("email", email))

	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		r.logger.Error("Failed to query tasks", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []model.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		r.logger.Error("Failed to decode tasks", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	r.logger.Info("Tasks listed successfully",
		zap.String("email", email),
		zap.Int("count", len(tasks)),
	)
	return tasks, nil
}

func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
