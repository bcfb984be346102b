package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the MongoDB connection holding the submissions collection.
// It is constructed once in main and injected into the repository; there
// is no package-level handle.
type Client struct {
	mongo      *mongo.Client
	collection *mongo.Collection
}

// Connect dials MongoDB and verifies the connection with a ping. A failed
// connection at startup is fatal to the process: the server must not
// accept requests without a working store.
func Connect(ctx context.Context, uri, dbName, collName string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := mc.Ping(ctx, readpref.Primary()); err != nil {
		_ = mc.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Client{
		mongo:      mc,
		collection: mc.Database(dbName).Collection(collName),
	}, nil
}

// Collection returns the submissions collection.
func (c *Client) Collection() *mongo.Collection {
	return c.collection
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.mongo.Disconnect(ctx)
}
