package mq

// Routing keys for task and notification events on the "events" exchange.
const (
	RoutingKeyTaskCreated       = "task.created"
	RoutingKeyTaskStatusChanged = "task.status_changed"
	RoutingKeyNotificationSaved = "notification.saved"
)

// TaskCreatedEvent is emitted after a task document is inserted.
type TaskCreatedEvent struct {
	TaskID string `json:"task_id"`
	Email  string `json:"email"`
	Title  string `json:"title"`
}

// TaskStatusChangedEvent is emitted after a status patch is applied.
type TaskStatusChangedEvent struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// NotificationSavedEvent is emitted after a notification upsert.
type NotificationSavedEvent struct {
	TaskID string `json:"task_id"`
	Email  string `json:"email"`
}
