// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/internal/service"
	"github.com/studyhub-id/studyhub/internal/store"
	"github.com/studyhub-id/studyhub/internal/utils"
	"github.com/studyhub-id/studyhub/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var doc models.RawDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	owner := models.User{
		ID:   utils.GetUserIDFromContext(ctx),
		Name: utils.GetUserNameFromContext(ctx),
	}

	id, err := h.services.NotesService.CreateNote(ctx, owner, doc)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid note data provided")
			http.Error(w, "title and content are required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during note creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.InsertResult{ID: id}, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	noteID := chi.URLParam(r, "noteID")

	var doc models.RawDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.NotesService.UpdateNote(ctx, utils.GetUserIDFromContext(ctx), noteID, doc)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid note update provided")
			http.Error(w, "no updatable fields provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Str("note_id", noteID).Msg("note not found")
			http.Error(w, "note not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during note update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	noteID := chi.URLParam(r, "noteID")

	err := h.services.NotesService.DeleteNote(ctx, utils.GetUserIDFromContext(ctx), noteID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Str("note_id", noteID).Msg("note not found")
			http.Error(w, "note not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during note deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
