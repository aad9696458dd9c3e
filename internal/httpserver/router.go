package httpserver

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"taskmanage/internal/handler"
	"taskmanage/internal/service/auth"
	"taskmanage/pkg/metrics"
	"taskmanage/pkg/mq"
)

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
	notificationHandler *handler.NotificationHandler,
	tokens *auth.Service,
	corsOrigins string,
	logger *zap.Logger,
	client *mongo.Client,
	publisher *mq.Publisher,
) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware(corsOrigins))

	// 添加请求日志中间件
	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		metrics.RecordHTTPRequestDuration(c.Request.Method, c.FullPath(), strconv.Itoa(status), latency)
		logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	})

	// Health endpoints (放在最前面)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "Server is running successfully.")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if client != nil {
			if err := client.Ping(ctx, nil); err != nil {
				c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
				return
			}
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/jwt", authHandler.IssueToken)
	r.GET("/logout", authHandler.Logout)
	r.PUT("/users/:email", userHandler.SaveUser)
	r.GET("/tasks/:email", taskHandler.ListTasks)
	r.PUT("/notification/:id", notificationHandler.SaveNotification)
	r.DELETE("/deleteNotification/:id", notificationHandler.DeleteNotification)
	r.GET("/notifications/:email", notificationHandler.ListNotifications)

	// Protected. This group is the whole auth policy: a route requires a
	// valid token cookie exactly when it is registered here.
	protected := r.Group("/")
	protected.Use(AuthMiddleware(tokens))
	{
		protected.POST("/task", taskHandler.CreateTask)
		protected.PUT("/update-task/:id", taskHandler.UpdateTask)
		protected.DELETE("/deleteTask/:id", taskHandler.DeleteTask)
		protected.GET("/task/:id", taskHandler.GetTask)
		protected.PATCH("/status/:id", taskHandler.SetStatus)
		protected.GET("/user/:email", userHandler.GetUser)
	}

	return r
}
