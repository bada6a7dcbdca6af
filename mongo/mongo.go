// Package mongo provides MongoDB-based storage for news snapshots.
package mongo

import (
	"context"

	"github.com/newsdesk/frontpage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB represents a MongoDB connection scoped to one database and collection.
type DB struct {
	client     *mongo.Client
	uri        string
	database   string
	collection string
}

// NewDB creates a new DB instance with the given connection settings.
func NewDB(uri, database, collection string) *DB {
	return &DB{
		uri:        uri,
		database:   database,
		collection: collection,
	}
}

// Open connects to MongoDB and verifies the connection with a ping.
// A failed ping fails startup.
func (db *DB) Open(ctx context.Context) error {
	if db.uri == "" {
		return frontpage.Errorf(frontpage.EINVALID, "MongoDB URI required (set MONGODB_URI)")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(db.uri))
	if err != nil {
		return frontpage.Errorf(frontpage.EUNAVAILABLE, "failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return frontpage.Errorf(frontpage.EUNAVAILABLE, "failed to connect to MongoDB: %v", err)
	}

	db.client = client
	return nil
}

// Close disconnects from MongoDB.
func (db *DB) Close(ctx context.Context) error {
	if db.client != nil {
		return db.client.Disconnect(ctx)
	}
	return nil
}

// snapshots returns the snapshot collection.
func (db *DB) snapshots() *mongo.Collection {
	return db.client.Database(db.database).Collection(db.collection)
}
