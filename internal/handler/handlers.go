package handler

import (
	"github.com/studyhub-id/studyhub/internal/handler/http"
	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
