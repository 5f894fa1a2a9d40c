package models

// Greeting is the fixed payload returned by the root and hello endpoints.
type Greeting struct {
	Message string `json:"message"`
}

// CreateResponse is the payload returned after a successful credential
// insert. It carries only the store-assigned identifier.
type CreateResponse struct {
	ID string `json:"id"`
}

// ErrorResponse is the uniform failure payload: a single "detail" field
// holding the stringified underlying error.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// DiagnosticsReport is the fixed-shape payload of the /test endpoint.
// Every field is always present; probe failures degrade the status texts
// instead of removing fields or producing an HTTP error.
type DiagnosticsReport struct {
	// Backend reports service liveness. Always the "running" marker when
	// the diagnostics handler executes at all.
	Backend string `json:"backend"`

	// Database reports document-store availability: not available,
	// available, connected-and-working, or connected-with-error.
	Database string `json:"database"`

	// DatabaseURL reports whether the connection-string environment
	// variable is set.
	DatabaseURL string `json:"database_url"`

	// DatabaseName reports whether the database-name environment
	// variable is set.
	DatabaseName string `json:"database_name"`

	// ConnectionStatus is "Connected" once a store handle exists,
	// "Not Connected" otherwise.
	ConnectionStatus string `json:"connection_status"`

	// Collections lists up to ten collection names from the configured
	// database; empty when the store is unreachable.
	Collections []string `json:"collections"`
}
