package store

import (
	"context"

	"github.com/studyhub-id/studyhub/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository persists notes. All write operations are owner-scoped:
// an id that exists but belongs to a different author behaves exactly like
// a missing one.
type NoteRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Note, error)
	InsertNote(ctx context.Context, note models.Note) error
	UpdateNote(ctx context.Context, id, ownerID string, fields map[string]any) error
	DeleteNote(ctx context.Context, id, ownerID string) error
}
