package store

import "github.com/studyhub-id/studyhub/internal/logger"

// Repositories bundles all persistence interfaces consumed by the service
// layer.
type Repositories struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
	}
}
