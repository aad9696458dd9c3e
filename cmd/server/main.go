package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"taskmanage/internal/config"
	"taskmanage/internal/handler"
	"taskmanage/internal/httpserver"
	"taskmanage/internal/repository"
	"taskmanage/internal/service/auth"
	"taskmanage/pkg/db"
	"taskmanage/pkg/logger"
	"taskmanage/pkg/mq"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting taskmanage server...",
		zap.String("db", cfg.DB.Name),
		zap.String("port", cfg.Server.Port),
	)

	// DB
	log.Info("Initializing database connection...")
	client, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	database := client.Database(cfg.DB.Name)

	userRepo := repository.NewUserRepository(database, log)
	taskRepo := repository.NewTaskRepository(database, log)
	notificationRepo := repository.NewNotificationRepository(database, log)

	// Optional event publisher
	var publisher *mq.Publisher
	var events handler.EventPublisher
	if cfg.MQ.URL != "" {
		log.Info("Initializing MQ publisher...", zap.String("mq_url", cfg.MQ.URL))
		publisher, err = mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			log.Fatal("Failed to init publisher", zap.Error(err))
		}
		defer publisher.Close()
		events = publisher
	}

	tokens := auth.NewService(cfg.JWT.Secret)

	authHandler := handler.NewAuthHandler(tokens, log)
	userHandler := handler.NewUserHandler(userRepo, log)
	taskHandler := handler.NewTaskHandler(taskRepo, events, log)
	notificationHandler := handler.NewNotificationHandler(notificationRepo, events, log)

	router := httpserver.NewRouter(
		authHandler,
		userHandler,
		taskHandler,
		notificationHandler,
		tokens,
		cfg.CORS.Origins,
		log,
		client,
		publisher,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 优雅退出处理
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("taskmanage shutdown complete")
}
