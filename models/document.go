package models

// RawDocument is the untyped field bag a stored document arrives as.
// The codec converts it to and from the typed Note representation.
type RawDocument struct {
	// ID is the document identifier. Empty on insert (the store assigns one).
	ID string `json:"id,omitempty"`

	// Fields holds the document's named values as delivered by the store.
	Fields map[string]any `json:"fields"`
}

// Document field names as stored remotely.
const (
	FieldTitle      = "title"
	FieldContent    = "content"
	FieldSummary    = "summary"
	FieldCategory   = "category"
	FieldTags       = "tags"
	FieldIsFavorite = "isFavorite"
	FieldIsPublic   = "isPublic"
	FieldAuthorID   = "authorId"
	FieldAuthorName = "authorName"
	FieldCreatedAt  = "createdAt"
	FieldUpdatedAt  = "updatedAt"
	FieldSharedWith = "sharedWith"
)

// Snapshot is a complete owner-scoped result set pushed by a realtime
// subscription whenever any change affects the queried set.
type Snapshot struct {
	// OwnerID scopes the snapshot to a single author.
	OwnerID string `json:"ownerId"`

	// Documents is the full matching result set, not a delta.
	Documents []RawDocument `json:"documents"`
}

// InsertResult carries the server-assigned identifier of a newly inserted
// document.
type InsertResult struct {
	ID string `json:"id"`
}
