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

type NotificationHandler struct {
	store  NotificationStore
	events EventPublisher
	logger *zap.Logger
}

func NewNotificationHandler(store NotificationStore, events EventPublisher, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{store: store, events: events, logger: logger}
}

// SaveNotification upserts by task id: a repeat save for the same task
// merges onto the stored document, the later fields winning.
func (h *NotificationHandler) SaveNotification(c *gin.Context) {
	taskID := c.Param("id")

	var notification model.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		h.logger.Warn("SaveNotification: invalid request body", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid notification document"})
		return
	}

	stored, err := h.store.Upsert(c.Request.Context(), taskID, notification)
	if err != nil {
		h.logger.Error("SaveNotification: store operation failed", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save notification"})
		return
	}

	metrics.NotificationSavedCount.Inc()
	if h.events != nil {
		if err := h.events.Publish(mq.RoutingKeyNotificationSaved, mq.NotificationSavedEvent{
			TaskID: taskID,
			Email:  stored.Email,
		}); err != nil {
			h.logger.Warn("Failed to publish event",
				zap.String("routing_key", mq.RoutingKeyNotificationSaved),
				zap.Error(err),
			)
		}
	}

	c.JSON(http.StatusOK, stored)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid notification id"})
			return
		}
		h.logger.Error("DeleteNotification: store operation failed", zap.String("notification_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	email := c.Param("email")

	notifications, err := h.store.ListByRecipient(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("ListNotifications: failed to fetch notifications", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}
