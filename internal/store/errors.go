package store

import "errors"

// Sentinel errors wrapping the underlying document-store failures.
// Callers can match against them with [errors.Is].
var (
	// ErrNotConfigured is returned by every operation of the unavailable
	// gateway, constructed when DATABASE_URL or DATABASE_NAME is missing
	// or the initial connection attempt failed.
	ErrNotConfigured = errors.New("document store is not configured")

	// ErrInsertingDocument indicates that the store rejected an insert.
	ErrInsertingDocument = errors.New("error inserting document")

	// ErrMissingInsertedID indicates that an insert succeeded but the
	// store did not report an identifier of the expected shape.
	ErrMissingInsertedID = errors.New("store did not return an inserted id")

	// ErrExecutingQuery indicates that a find operation failed.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrDecodingDocuments indicates a failure while draining the result
	// cursor into raw documents.
	ErrDecodingDocuments = errors.New("error decoding documents")

	// ErrListingCollections indicates that collection names could not be
	// listed from the configured database.
	ErrListingCollections = errors.New("error listing collections")
)
