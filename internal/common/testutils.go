package common

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TestDB spins up a throwaway MongoDB container and returns a handle to the
// application database with its indexes in place.
func TestDB(t *testing.T) *mongo.Database {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0.12")
	if err != nil {
		t.Fatalf("could not start mongodb container: %v", err)
	}

	connURL, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("could not get mongodb connection URL: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURL).SetServerSelectionTimeout(10*time.Second))
	if err != nil {
		t.Fatalf("could not connect to mongodb: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("could not ping mongodb: %v", err)
	}

	db := client.Database(Database)

	if err := EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("could not create indexes: %v", err)
	}

	t.Cleanup(func() {
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("could not disconnect mongodb client: %v", err)
		}
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("could not terminate container: %v", err)
		}
	})

	return db
}
