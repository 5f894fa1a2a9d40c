package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkarpenko/credvault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the display name of a credential.
	FieldTitle = "title"

	// FieldUsername targets the account name of a credential.
	FieldUsername = "username"

	// FieldPassword targets the secret value of a credential.
	FieldPassword = "password"
)

// defaultCredentialFields is the field set validated when no explicit
// scoping is requested. URL and note are optional and never validated.
var defaultCredentialFields = []string{FieldTitle, FieldUsername, FieldPassword}

// CredentialValidator implements the Validator interface for the Credential
// model. Both value and pointer forms are accepted.
type CredentialValidator struct {
}

// NewCredentialValidator constructs a new CredentialValidator and returns it
// as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
// Returns ErrUnsupportedType if obj is not a Credential.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, credential models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultCredentialFields
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(credential.Title) == "" {
				return ErrValidationNoTitle
			}
		case FieldUsername:
			if strings.TrimSpace(credential.Username) == "" {
				return ErrValidationNoUsername
			}
		case FieldPassword:
			if credential.Password == "" {
				return ErrValidationNoPassword
			}
		}
	}

	return nil
}
