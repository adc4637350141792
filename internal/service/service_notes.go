// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studyhub-id/studyhub/internal/codec"
	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/internal/store"
	"github.com/studyhub-id/studyhub/internal/utils"
	"github.com/studyhub-id/studyhub/models"
)

// clientEditableFields are the only wire fields a client may set or change.
// Everything else in an incoming document (author, timestamps, id) is
// server-managed and silently discarded, so a client cannot spoof ownership
// or rewrite history.
var clientEditableFields = map[string]bool{
	models.FieldTitle:      true,
	models.FieldContent:    true,
	models.FieldSummary:    true,
	models.FieldCategory:   true,
	models.FieldTags:       true,
	models.FieldIsFavorite: true,
	models.FieldIsPublic:   true,
	models.FieldSharedWith: true,
}

// notesService is the concrete implementation of NotesService.
type notesService struct {
	noteRepository store.NoteRepository
	broker         *store.Broker
	uuid           *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewNotesService constructs a NotesService backed by the given repository
// and change broker.
func NewNotesService(noteRepository store.NoteRepository, broker *store.Broker, logger *logger.Logger) NotesService {
	return &notesService{
		noteRepository: noteRepository,
		broker:         broker,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateNote persists a new note for owner. Title and content are required;
// the category is normalized to the closed set. The id, author identity and
// timestamps are assigned here, never taken from the document.
func (n *notesService) CreateNote(ctx context.Context, owner models.User, doc models.RawDocument) (string, error) {
	log := logger.FromContext(ctx)

	fields := doc.Fields
	if fields == nil {
		fields = map[string]any{}
	}

	title := strings.TrimSpace(stringField(fields, models.FieldTitle))
	content := stringField(fields, models.FieldContent)
	if title == "" || strings.TrimSpace(content) == "" {
		log.Error().
			Str("func", "notesService.CreateNote").
			Str("owner_id", owner.ID).
			Msg("note is missing a title or content")
		return "", ErrInvalidDataProvided
	}

	now := time.Now().UTC()
	note := models.Note{
		ID:         n.uuid.Generate(),
		Title:      title,
		Content:    content,
		Summary:    stringField(fields, models.FieldSummary),
		Category:   models.NormalizeCategory(stringField(fields, models.FieldCategory)),
		Tags:       stringListField(fields, models.FieldTags),
		IsPublic:   boolField(fields, models.FieldIsPublic),
		AuthorID:   owner.ID,
		AuthorName: owner.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
		SharedWith: []string{},
	}

	if err := n.noteRepository.InsertNote(ctx, note); err != nil {
		log.Err(err).
			Str("func", "notesService.CreateNote").
			Str("owner_id", owner.ID).
			Msg("failed to persist note")
		return "", fmt.Errorf("failed to persist note: %w", err)
	}

	n.broker.Publish(owner.ID)
	return note.ID, nil
}

// UpdateNote merge-updates the owner's note. Unknown and server-managed
// fields are dropped; an update that carries nothing else is rejected with
// ErrInvalidDataProvided. A title or content field, when present, must not
// be blank.
func (n *notesService) UpdateNote(ctx context.Context, ownerID, noteID string, doc models.RawDocument) error {
	log := logger.FromContext(ctx)

	fields := make(map[string]any, len(doc.Fields))
	for field, value := range doc.Fields {
		if !clientEditableFields[field] {
			continue
		}
		if field == models.FieldCategory {
			value = models.NormalizeCategory(stringField(doc.Fields, models.FieldCategory))
		}
		fields[field] = value
	}
	if len(fields) == 0 {
		return ErrInvalidDataProvided
	}

	for _, required := range []string{models.FieldTitle, models.FieldContent} {
		if value, ok := fields[required]; ok {
			if s, _ := value.(string); strings.TrimSpace(s) == "" {
				return ErrInvalidDataProvided
			}
		}
	}

	if err := n.noteRepository.UpdateNote(ctx, noteID, ownerID, fields); err != nil {
		log.Err(err).
			Str("func", "notesService.UpdateNote").
			Str("note_id", noteID).
			Str("owner_id", ownerID).
			Msg("failed to update note")
		return fmt.Errorf("failed to update note: %w", err)
	}

	n.broker.Publish(ownerID)
	return nil
}

// DeleteNote removes the owner's note and signals subscribers.
func (n *notesService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	log := logger.FromContext(ctx)

	if err := n.noteRepository.DeleteNote(ctx, noteID, ownerID); err != nil {
		log.Err(err).
			Str("func", "notesService.DeleteNote").
			Str("note_id", noteID).
			Str("owner_id", ownerID).
			Msg("failed to delete note")
		return fmt.Errorf("failed to delete note: %w", err)
	}

	n.broker.Publish(ownerID)
	return nil
}

// Snapshot reads the owner's complete result set in wire form.
func (n *notesService) Snapshot(ctx context.Context, ownerID string) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "notesService.Snapshot").
			Str("owner_id", ownerID).
			Msg("failed to read notes for snapshot")
		return models.Snapshot{}, fmt.Errorf("failed to read notes for snapshot: %w", err)
	}

	documents := make([]models.RawDocument, 0, len(notes))
	for _, note := range notes {
		documents = append(documents, codec.EncodeNote(note))
	}

	return models.Snapshot{OwnerID: ownerID, Documents: documents}, nil
}

// Changes implements NotesService by delegating to the broker.
func (n *notesService) Changes(ownerID string) (<-chan struct{}, func()) {
	return n.broker.Subscribe(ownerID)
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func boolField(fields map[string]any, key string) bool {
	b, _ := fields[key].(bool)
	return b
}

func stringListField(fields map[string]any, key string) []string {
	switch v := fields[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
