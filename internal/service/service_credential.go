package service

import (
	"context"
	"time"

	"github.com/mkarpenko/credvault/internal/logger"
	"github.com/mkarpenko/credvault/internal/store"
	"github.com/mkarpenko/credvault/internal/validators"
	"github.com/mkarpenko/credvault/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var credentialCollection = (&models.Credential{}).CollectionName()

type credentialService struct {
	documents store.DocumentGateway
	validator validators.Validator

	logger *logger.Logger
}

// NewCredentialService constructs a [CredentialService] backed by the given
// document gateway.
func NewCredentialService(documents store.DocumentGateway, validator validators.Validator, logger *logger.Logger) CredentialService {
	return &credentialService{
		documents: documents,
		validator: validator,
		logger:    logger,
	}
}

func (s *credentialService) Create(ctx context.Context, credential models.Credential) (string, error) {
	if err := s.validator.Validate(ctx, credential); err != nil {
		return "", err
	}

	return s.documents.CreateDocument(ctx, credential.CollectionName(), credential)
}

func (s *credentialService) List(ctx context.Context, q string) ([]models.CredentialOut, error) {
	filter := store.MatchAll()
	if q != "" {
		filter = store.ContainsAny(q, "title", "username")
	}

	docs, err := s.documents.GetDocuments(ctx, credentialCollection, filter)
	if err != nil {
		return nil, err
	}

	credentials := make([]models.CredentialOut, 0, len(docs))
	for _, doc := range docs {
		credentials = append(credentials, mapCredential(doc))
	}

	return credentials, nil
}

// mapCredential converts a raw stored document into the outbound shape.
// Required text fields default to the empty string, optional fields to nil;
// no stored value may cause a mapping error.
func mapCredential(doc store.Document) models.CredentialOut {
	return models.CredentialOut{
		ID:        documentID(doc),
		Title:     textField(doc, "title"),
		Username:  textField(doc, "username"),
		Password:  textField(doc, "password"),
		URL:       optionalTextField(doc, "url"),
		Note:      optionalTextField(doc, "note"),
		CreatedAt: timestampField(doc, "created_at"),
		UpdatedAt: timestampField(doc, "updated_at"),
	}
}

// documentID renders the store-assigned identifier as text.
func documentID(doc store.Document) string {
	switch id := doc["_id"].(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}

// textField returns the string value stored under key, or the empty string
// when the field is absent or not text.
func textField(doc store.Document, key string) string {
	if value, ok := doc[key].(string); ok {
		return value
	}
	return ""
}

// optionalTextField returns a pointer to the string value stored under key,
// or nil when the field is absent or not text.
func optionalTextField(doc store.Document, key string) *string {
	if value, ok := doc[key].(string); ok {
		return &value
	}
	return nil
}

// timestampField renders the instant stored under key as ISO-8601 text.
// Absent or malformed values map to nil, never to an error.
func timestampField(doc store.Document, key string) *string {
	var instant time.Time

	switch value := doc[key].(type) {
	case primitive.DateTime:
		instant = value.Time().UTC()
	case time.Time:
		instant = value.UTC()
	case string:
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return nil
		}
		instant = parsed.UTC()
	default:
		return nil
	}

	formatted := instant.Format(time.RFC3339)
	return &formatted
}
