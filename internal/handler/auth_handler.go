package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanage/internal/service/auth"
)

const cookieName = "token"

type AuthHandler struct {
	tokens *auth.Service
	logger *zap.Logger
}

func NewAuthHandler(tokens *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, logger: logger}
}

type jwtRequest struct {
	Email string `json:"email"`
}

// IssueToken exchanges an email assertion for a signed cookie.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req jwtRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		h.logger.Warn("IssueToken: missing email in request body")
		c.JSON(http.StatusBadRequest, gin.H{"message": "email required"})
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		h.logger.Error("IssueToken: failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	h.logger.Info("Token issued", zap.String("email", req.Email))

	// Cookie lifetime matches the token expiration.
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cookieName, token, int(auth.TokenTTL.Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the cookie. It succeeds regardless of prior auth state.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.logger.Info("Logout successful")

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
