package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Settings struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, settings Settings) (*mongo.Database, error) {
	if settings.URI == "" {
		return nil, fmt.Errorf("mongodb URI is required")
	}
	if settings.Database == "" {
		return nil, fmt.Errorf("mongodb database name is required")
	}

	timeout := settings.ConnectTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(settings.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client.Database(settings.Database), nil
}
