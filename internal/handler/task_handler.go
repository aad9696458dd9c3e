package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanage/contracts/mq"
	"taskmanage/internal/model"
	"taskmanage/internal/repository"
	"taskmanage/pkg/metrics"
)

type TaskHandler struct {
	store  TaskStore
	events EventPublisher
	logger *zap.Logger
}

func NewTaskHandler(store TaskStore, events EventPublisher, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{store: store, events: events, logger: logger}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		h.logger.Warn("CreateTask: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task document"})
		return
	}

	id, err := h.store.Insert(c.Request.Context(), task)
	if err != nil {
		h.logger.Error("CreateTask: failed to insert task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	metrics.TaskCreatedCount.Inc()
	h.publish(mq.RoutingKeyTaskCreated, mq.TaskCreatedEvent{
		TaskID: id,
		Email:  task.Email,
		Title:  task.Title,
	})

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id := c.Param("id")

	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		h.logger.Warn("UpdateTask: invalid request body", zap.String("task_id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task document"})
		return
	}

	matched, modified, err := h.store.UpdateFields(c.Request.Context(), id, task)
	if err != nil {
		h.respondStoreError(c, "UpdateTask", id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetStatus patches only the status field. A patch for an unknown id is a
// 404, never a stub document.
func (h *TaskHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("SetStatus: invalid request body", zap.String("task_id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid status document"})
		return
	}

	matched, modified, err := h.store.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.respondStoreError(c, "SetStatus", id, err)
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
		return
	}

	h.publish(mq.RoutingKeyTaskStatusChanged, mq.TaskStatusChangedEvent{
		TaskID: id,
		Status: req.Status,
	})

	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, "DeleteTask", id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id := c.Param("id")

	task, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
			return
		}
		h.respondStoreError(c, "GetTask", id, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	email := c.Param("email")

	tasks, err := h.store.ListByOwner(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("ListTasks: failed to fetch tasks", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) respondStoreError(c *gin.Context, op, id string, err error) {
	if errors.Is(err, repository.ErrInvalidID) {
		h.logger.Warn(op+": invalid task id", zap.String("task_id", id))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task id"})
		return
	}
	h.logger.Error(op+": store operation failed", zap.String("task_id", id), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "store operation failed"})
}

func (h *TaskHandler) publish(routingKey string, payload any) {
	if h.events == nil {
		return
	}
	if err := h.events.Publish(routingKey, payload); err != nil {
		h.logger.Warn("Failed to publish event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}
