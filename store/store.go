// store provides the gateway to the MongoDB collections backing the
// service. Documents are addressed by the application-level "id" field;
// the engine's own _id is projected out of every read and never leaves
// this layer.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QueryLimit bounds every list query.
const QueryLimit = 100

// Collection is the slice of *mongo.Collection the controllers use.
// Method signatures match the driver exactly so the concrete collection
// satisfies it and tests can substitute fakes built from
// mongo.NewSingleResultFromDocument / mongo.NewCursorFromDocuments.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

var _ Collection = (*mongo.Collection)(nil)

// Collections bundles the three collections the service works with.
type Collections struct {
	Users    Collection
	Products Collection
	Orders   Collection
}

// Connect opens a pooled client, verifies it with a ping and returns the
// named database.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, client.Database(database), nil
}

// NewCollections wires the service's collections from a database handle.
func NewCollections(db *mongo.Database) *Collections {
	return &Collections{
		Users:    db.Collection("users"),
		Products: db.Collection("products"),
		Orders:   db.Collection("orders"),
	}
}

// FindOneOpts returns FindOne options excluding the engine _id.
func FindOneOpts() *options.FindOneOptions {
	return options.FindOne().SetProjection(bson.M{"_id": 0})
}

// FindOpts returns Find options excluding the engine _id and capped at
// QueryLimit documents, in insertion order.
func FindOpts() *options.FindOptions {
	return options.Find().SetProjection(bson.M{"_id": 0}).SetLimit(QueryLimit)
}
