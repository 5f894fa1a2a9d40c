package adapter

import (
	"context"

	"github.com/mkarpenko/credvault/models"
)

// APIClient is a typed client for the credvault HTTP API, intended for
// command-line tooling and integration tests.
type APIClient interface {
	// Hello calls the greeting endpoint and returns its fixed payload.
	Hello(ctx context.Context) (models.Greeting, error)

	// CreateCredential submits a credential and returns the store-assigned
	// identifier.
	CreateCredential(ctx context.Context, credential models.Credential) (string, error)

	// ListCredentials returns stored credentials, optionally filtered by
	// the free-text query q.
	ListCredentials(ctx context.Context, q string) ([]models.CredentialOut, error)

	// Diagnostics fetches the store-health report.
	Diagnostics(ctx context.Context) (models.DiagnosticsReport, error)
}
