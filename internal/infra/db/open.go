// Package db manages the MongoDB client lifecycle. The client is opened
// once at process start and shared for the lifetime of the process.
package db

import (
	"context"
	"log"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"intake-backend/pkg/config"
)

// Open connects to MongoDB using the given configuration and verifies the
// connection with a ping. A connection failure is fatal: the process must
// not start serving traffic against an unreachable store.
func Open(cfg config.MongoConfig) *mongo.Client {
	if cfg.URI == "" {
		log.Fatal("MONGODB_URI not set")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Fatalf("failed to create mongo client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping mongo: %v", err)
	}

	slog.Info("document store connection established",
		slog.String("database", cfg.Database))
	return client
}

// Close disconnects the client, logging instead of failing on error.
func Close(ctx context.Context, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		slog.Error("failed to disconnect mongo client", slog.Any("error", err))
	}
}
