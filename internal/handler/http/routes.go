package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// note routes, all owner-scoped through the JWT subject
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/notes/", h.createNote)
		r.Patch("/api/notes/{noteID}", h.updateNote)
		r.Delete("/api/notes/{noteID}", h.deleteNote)
		r.Get("/api/notes/subscribe", h.subscribe)
	})

	return router
}
