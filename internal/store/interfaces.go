package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a raw schemaless record as returned by the document store.
type Document = bson.M

// DocumentGateway is the single persistence abstraction of the service.
// It exposes collection-name-parameterized operations over the document
// store and propagates every underlying store error to the caller.
type DocumentGateway interface {
	// CreateDocument serializes document to the store's native shape,
	// inserts it into the named collection, and returns the store-assigned
	// identifier as text.
	CreateDocument(ctx context.Context, collection string, document any) (string, error)

	// GetDocuments returns the full sequence of documents in the named
	// collection matching filter, in the store's natural order.
	GetDocuments(ctx context.Context, collection string, filter Filter) ([]Document, error)

	// ListCollections returns up to limit collection names from the
	// configured database. Used by the diagnostics probes only.
	ListCollections(ctx context.Context, limit int) ([]string, error)

	// DatabaseName returns the logical database name behind the gateway,
	// or an empty string when no connection exists.
	DatabaseName() string

	// Available reports whether a live store handle backs the gateway.
	// The unavailable implementation returns false and fails every
	// operation with [ErrNotConfigured].
	Available() bool
}
