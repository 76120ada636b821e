package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names for the persisted entities.
const (
	ContactInquiries = "contact_inquiries"
	ServiceRequests  = "service_requests"
)

const (
	// Listings are capped; documents past this limit are not returned.
	maxListResults = 1000

	opTimeout = 10 * time.Second
)

// Store wraps the Mongo client and exposes the two operations the service
// needs: insert a document, read a whole collection. It is constructed once
// in main and handed to the handlers.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Insert writes a single document into the named collection.
func (s *Store) Insert(ctx context.Context, collection string, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

// FindAll decodes every document in the named collection into out, which
// must be a pointer to a slice. Results come back in store order, capped at
// maxListResults.
func (s *Store) FindAll(ctx context.Context, collection string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := s.db.Collection(collection).Find(ctx, bson.D{},
		options.Find().SetLimit(maxListResults))
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}
