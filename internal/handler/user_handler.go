package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanage/internal/model"
	"taskmanage/internal/repository"
)

type UserHandler struct {
	store  UserStore
	logger *zap.Logger
}

func NewUserHandler(store UserStore, logger *zap.Logger) *UserHandler {
	return &UserHandler{store: store, logger: logger}
}

// SaveUser upserts a profile keyed by email. A save with status "Requested"
// always applies; any other save of an existing profile is an idempotent
// no-op so that fields set by other actors survive accidental re-saves.
func (h *UserHandler) SaveUser(c *gin.Context) {
	email := c.Param("email")

	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		h.logger.Warn("SaveUser: invalid request body", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user document"})
		return
	}

	h.logger.Info("SaveUser request received",
		zap.String("email", email),
		zap.String("status", user.Status),
	)

	var (
		stored model.User
		err    error
	)
	if user.Status == model.StatusRequested {
		stored, err = h.store.Merge(c.Request.Context(), email, user)
	} else {
		stored, err = h.store.CreateIfAbsent(c.Request.Context(), email, user)
	}
	if err != nil {
		h.logger.Error("SaveUser: store operation failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save user"})
		return
	}

	c.JSON(http.StatusOK, stored)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Param("email")

	user, err := h.store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		h.logger.Error("GetUser: failed to fetch user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
