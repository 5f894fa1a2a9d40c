package validators

import "errors"

var (
	// ErrUnsupportedType is returned when Validate receives a model it
	// does not know how to check.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrValidationNoTitle    = errors.New("title is required")
	ErrValidationNoUsername = errors.New("username is required")
	ErrValidationNoPassword = errors.New("password is required")
)
