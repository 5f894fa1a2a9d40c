package store

import (
	"context"
	"fmt"

	"github.com/mkarpenko/credvault/internal/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateDocument inserts document into the named collection and returns the
// store-assigned identifier in hex text form.
//
// The identifier is always generated by the store layer, never by the
// service. Any insert failure is propagated wrapped in
// [ErrInsertingDocument].
func (db *DB) CreateDocument(ctx context.Context, collection string, document any) (string, error) {
	log := logger.FromContext(ctx)

	result, err := db.database.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		log.Err(err).
			Str("func", "DB.CreateDocument").
			Str("collection", collection).
			Msg("failed to insert document")
		return "", fmt.Errorf("%w: %w", ErrInsertingDocument, err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error().
			Str("func", "DB.CreateDocument").
			Str("collection", collection).
			Any("inserted_id", result.InsertedID).
			Msg("inserted id has unexpected type")
		return "", ErrMissingInsertedID
	}

	return objectID.Hex(), nil
}

// GetDocuments returns every document of the named collection matching
// filter, in whatever order the store yields them. A zero-value filter
// matches all documents.
func (db *DB) GetDocuments(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	log := logger.FromContext(ctx)

	cursor, err := db.database.Collection(collection).Find(ctx, filter.Query())
	if err != nil {
		log.Err(err).
			Str("func", "DB.GetDocuments").
			Str("collection", collection).
			Msg("failed to execute find query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	// allocated non-nil so an empty result serializes as [], not null
	documents := make([]Document, 0)
	if err := cursor.All(ctx, &documents); err != nil {
		log.Err(err).
			Str("func", "DB.GetDocuments").
			Str("collection", collection).
			Msg("failed to decode documents from cursor")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	return documents, nil
}

// ListCollections returns up to limit collection names from the configured
// database.
func (db *DB) ListCollections(ctx context.Context, limit int) ([]string, error) {
	log := logger.FromContext(ctx)

	names, err := db.database.ListCollectionNames(ctx, MatchAll().Query())
	if err != nil {
		log.Err(err).
			Str("func", "DB.ListCollections").
			Msg("failed to list collection names")
		return nil, fmt.Errorf("%w: %w", ErrListingCollections, err)
	}

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	return names, nil
}
