package common

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	Database           = "BloggyDB"
	BlogCollection     = "blogCollection"
	WishlistCollection = "wishlistBlogs"
	CommentCollection  = "comments"
)

// NewDB connects to the MongoDB deployment behind URI and verifies the
// connection with a ping before returning the client.
func NewDB(URI string, selectionTimeout time.Duration) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(URI).
		SetServerAPIOptions(serverAPI).
		SetServerSelectionTimeout(selectionTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}

// CloseDB disconnects the client and releases the connection pool.
func CloseDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.Disconnect(ctx)
}

// EnsureIndexes creates the text index backing full-text search over the
// blog long description. CreateOne is a no-op when the index already exists.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(BlogCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "long_description", Value: "text"}},
	})
	return err
}
