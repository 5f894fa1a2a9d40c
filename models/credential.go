package models

// Credential is the inbound representation of a single stored secret.
// Title, Username and Password are required; URL and Note are optional
// metadata the client may omit entirely.
//
// The bson tags describe how the record is persisted in the "credential"
// collection. The store assigns the document identifier on insert; the
// service never generates one.
type Credential struct {
	// Title is the human-readable display name of the record
	// (e.g. "GitHub").
	Title string `json:"title" bson:"title"`

	// Username is the account name the secret belongs to.
	Username string `json:"username" bson:"username"`

	// Password is the secret value. Stored as-is; encryption at rest is
	// out of scope for this service.
	Password string `json:"password" bson:"password"`

	// URL is an optional link to the site the credential is used on.
	URL *string `json:"url,omitempty" bson:"url,omitempty"`

	// Note is an optional free-form annotation.
	Note *string `json:"note,omitempty" bson:"note,omitempty"`
}

// CollectionName returns the name of the document collection
// associated with the Credential model.
func (c *Credential) CollectionName() string {
	return "credential"
}

// CredentialOut is the outbound representation of a stored credential.
// Every key is always present in the serialized form: required text fields
// fall back to the empty string when unset in storage, optional fields and
// timestamps are rendered as null.
type CredentialOut struct {
	// ID is the store-assigned document identifier in hex text form.
	ID string `json:"id"`

	// Title is the display name; empty string when unset in storage.
	Title string `json:"title"`

	// Username is the account name; empty string when unset in storage.
	Username string `json:"username"`

	// Password is the secret value; empty string when unset in storage.
	Password string `json:"password"`

	// URL is the optional site link; null when absent.
	URL *string `json:"url"`

	// Note is the optional annotation; null when absent.
	Note *string `json:"note"`

	// CreatedAt is the creation instant as ISO-8601 text, or null when the
	// stored value is absent or not decodable as an instant.
	CreatedAt *string `json:"created_at"`

	// UpdatedAt is the last-modification instant as ISO-8601 text, or null
	// under the same rules as CreatedAt.
	UpdatedAt *string `json:"updated_at"`
}
