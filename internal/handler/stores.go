package handler

import (
	"context"

	"taskmanage/internal/model"
)

// Store interfaces are satisfied by the mongo repositories and by in-memory
// fakes in tests. Every operation is a single atomic store call.

type UserStore interface {
	CreateIfAbsent(ctx context.Context, email string, u model.User) (model.User, error)
	Merge(ctx context.Context, email string, u model.User) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

type TaskStore interface {
	Insert(ctx context.Context, t model.Task) (string, error)
	UpdateFields(ctx context.Context, id string, t model.Task) (matched, modified int64, err error)
	SetStatus(ctx context.Context, id, status string) (matched, modified int64, err error)
	Delete(ctx context.Context, id string) (int64, error)
	FindByID(ctx context.Context, id string) (model.Task, error)
	ListByOwner(ctx context.Context, email string) ([]model.Task, error)
}

type NotificationStore interface {
	Upsert(ctx context.Context, taskID string, n model.Notification) (model.Notification, error)
	Delete(ctx context.Context, id string) (int64, error)
	ListByRecipient(ctx context.Context, email string) ([]model.Notification, error)
}

// EventPublisher emits domain events for downstream consumers. A nil
// publisher disables event emission.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}
