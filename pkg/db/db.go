package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"taskmanage/internal/config"
)

// NewConnection connects to MongoDB and verifies the connection with a ping.
func NewConnection(cfg config.DBConfig, logger *zap.Logger) (*mongo.Client, error) {
	logger.Info("Initializing MongoDB connection",
		zap.String("db", cfg.Name),
	)

	opts := options.Client().ApplyURI(cfg.URI)
	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", zap.Error(err))
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer pingCancel()

	// A failed ping is not fatal: the client connects lazily, so the server
	// can come up and serve /health while the database is still down.
	// /readyz keeps reporting unreadiness until the ping succeeds.
	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Warn("MongoDB ping failed, continuing with lazy connection", zap.Error(err))
		return client, nil
	}

	logger.Info("MongoDB connection established successfully")
	return client, nil
}
