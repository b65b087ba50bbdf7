// Package store provides the document store adapter: generic create and
// read-by-filter operations parameterized by collection name, over MongoDB.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rakb/api/internal/db"
)

// ErrNotConfigured is returned by every data operation when the store
// connection was never established (missing DATABASE_URL/DATABASE_NAME).
var ErrNotConfigured = errors.New("database not configured")

// Store is the document store adapter contract. Documents are returned in
// the store's natural (insertion) order; no sort is applied.
type Store interface {
	// Create inserts a document and returns the generated identifier as a string.
	Create(ctx context.Context, collection string, doc any) (string, error)
	// Find returns at most limit documents matching the filter. limit <= 0 means no limit.
	Find(ctx context.Context, collection string, filter Filter, limit int64) ([]bson.M, error)
	// FindOne returns the first document matching the filter, or mongo.ErrNoDocuments.
	FindOne(ctx context.Context, collection string, filter Filter) (bson.M, error)
	// Distinct returns the distinct values of a field across a collection.
	Distinct(ctx context.Context, collection, field string) ([]any, error)
	// CollectionNames enumerates collection names, for diagnostics.
	CollectionNames(ctx context.Context) ([]string, error)
	// Configured reports whether the store connection is initialized.
	Configured() bool
}

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps a MongoDB database handle. A nil handle yields an
// unconfigured store whose data operations all fail with ErrNotConfigured.
func NewMongoStore(database *mongo.Database) Store {
	return &mongoStore{db: database}
}

func (s *mongoStore) Configured() bool {
	return s.db != nil
}

func (s *mongoStore) Create(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", ErrNotConfigured
	}

	var res *mongo.InsertOneResult
	operation := func() error {
		var insertErr error
		res, insertErr = s.db.Collection(collection).InsertOne(ctx, doc)
		return insertErr
	}

	if err := db.Try(operation); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *mongoStore) Find(ctx context.Context, collection string, filter Filter, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter.BSON(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}
	return docs, nil
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter Filter) (bson.M, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	var doc bson.M
	if err := s.db.Collection(collection).FindOne(ctx, filter.BSON()).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	return doc, nil
}

func (s *mongoStore) Distinct(ctx context.Context, collection, field string) ([]any, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	values, err := s.db.Collection(collection).Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to read distinct %s.%s: %w", collection, field, err)
	}
	return values, nil
}

func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
