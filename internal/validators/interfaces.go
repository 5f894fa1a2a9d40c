package validators

import "context"

// Validator checks a domain model at the service boundary before it is
// handed to the storage layer.
type Validator interface {
	// Validate checks obj; the optional fields arguments restrict
	// validation to the named subset. When omitted, every required field
	// is validated.
	Validate(ctx context.Context, obj any, fields ...string) error
}
