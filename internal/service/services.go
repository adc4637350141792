package service

import (
	"github.com/studyhub-id/studyhub/internal/config"
	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/internal/store"
)

type Services struct {
	AuthService  AuthService
	NotesService NotesService
}

func NewServices(repositories *store.Repositories, broker *store.Broker, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		NotesService: NewNotesService(repositories.NoteRepository, broker, logger),
	}
}
