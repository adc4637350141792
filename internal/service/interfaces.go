package service

import (
	"context"

	"github.com/studyhub-id/studyhub/models"
)

// AuthService handles user registration, credential verification, and JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NotesService owns note business rules: validation, server-managed field
// injection, owner scoping, and change notification.
type NotesService interface {
	// CreateNote validates the incoming document, injects the
	// server-managed fields and persists the note. Returns the new id.
	CreateNote(ctx context.Context, owner models.User, doc models.RawDocument) (string, error)
	// UpdateNote merge-updates the caller's note from the provided fields.
	// Server-managed fields in the document are silently discarded.
	UpdateNote(ctx context.Context, ownerID, noteID string, doc models.RawDocument) error
	// DeleteNote removes the caller's note.
	DeleteNote(ctx context.Context, ownerID, noteID string) error
	// Snapshot reads the owner's full result set in wire form, newest
	// update first.
	Snapshot(ctx context.Context, ownerID string) (models.Snapshot, error)
	// Changes reports note-change signals for the owner until cancel is
	// called.
	Changes(ownerID string) (<-chan struct{}, func())
}
