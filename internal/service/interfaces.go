package service

import (
	"context"

	"github.com/mkarpenko/credvault/models"
)

// CredentialService owns the credential domain operations: boundary
// validation, storage writes, and the mapping of raw stored documents to the
// outbound representation.
type CredentialService interface {
	// Create validates credential and inserts exactly one document into
	// the credential collection, returning the store-assigned identifier.
	Create(ctx context.Context, credential models.Credential) (string, error)

	// List returns every stored credential, or, when q is non-empty,
	// those whose title or username contains q as a case-insensitive
	// substring.
	List(ctx context.Context, q string) ([]models.CredentialOut, error)
}

// DiagnosticsService reports store connectivity and configuration status.
// It never fails: every probe error degrades the reported status text.
type DiagnosticsService interface {
	// Report runs the independent diagnostic probes and assembles the
	// fixed-shape report.
	Report(ctx context.Context) models.DiagnosticsReport
}
