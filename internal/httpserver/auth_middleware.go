package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanage/internal/service/auth"
	"taskmanage/pkg/metrics"
)

const cookieName = "token"

// AuthMiddleware rejects requests without a valid token cookie and stores
// the verified email in the request context for handlers.
func AuthMiddleware(tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			metrics.AuthRejectedCount.Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		email, err := tokens.Verify(token)
		if err != nil {
			metrics.AuthRejectedCount.Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		c.Set("email", email)

		c.Next()
	}
}
