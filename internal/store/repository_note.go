// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/models"
)

// noteColumns maps wire-format field names to their database columns.
// Only these fields are updatable through [noteRepository.UpdateNote];
// server-managed columns (id, author, created_at) are deliberately absent.
var noteColumns = map[string]string{
	models.FieldTitle:      "title",
	models.FieldContent:    "content",
	models.FieldSummary:    "summary",
	models.FieldCategory:   "category",
	models.FieldTags:       "tags",
	models.FieldIsFavorite: "is_favorite",
	models.FieldIsPublic:   "is_public",
	models.FieldSharedWith: "shared_with",
}

// jsonColumns are stored as JSON-encoded TEXT so the same schema works on
// both PostgreSQL and SQLite.
var jsonColumns = map[string]bool{
	"tags":        true,
	"shared_with": true,
}

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using
// the embedded [*DB] connection.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// ListByOwner retrieves every note authored by ownerID, newest update first.
//
// Returns an empty slice when the user has no notes.
func (p *noteRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.builder.
		Select("id", "author_id", "author_name", "title", "content", "summary",
			"category", "tags", "is_favorite", "is_public", "shared_with",
			"created_at", "updated_at").
		From("notes").
		Where("author_id = ?", ownerID).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByOwner").
			Str("owner_id", ownerID).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByOwner").
			Str("owner_id", ownerID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 32)

	for rows.Next() {
		var note models.Note
		var tagsJSON, sharedJSON string

		scanErr := rows.Scan(
			&note.ID,
			&note.AuthorID,
			&note.AuthorName,
			&note.Title,
			&note.Content,
			&note.Summary,
			&note.Category,
			&tagsJSON,
			&note.IsFavorite,
			&note.IsPublic,
			&sharedJSON,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListByOwner").
				Str("owner_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		note.Tags = decodeStringList(tagsJSON)
		note.SharedWith = decodeStringList(sharedJSON)

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.ListByOwner").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// InsertNote persists a fully populated note. All fields, including the id
// and timestamps, are assigned by the caller (the service layer) before the
// insert.
func (p *noteRepository) InsertNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := p.builder.
		Insert("notes").
		Columns("id", "author_id", "author_name", "title", "content", "summary",
			"category", "tags", "is_favorite", "is_public", "shared_with",
			"created_at", "updated_at").
		Values(note.ID, note.AuthorID, note.AuthorName, note.Title, note.Content,
			note.Summary, note.Category, encodeStringList(note.Tags),
			note.IsFavorite, note.IsPublic, encodeStringList(note.SharedWith),
			note.CreatedAt, note.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.InsertNote").
			Str("note_id", note.ID).
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := p.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.InsertNote").
			Str("note_id", note.ID).
			Str("owner_id", note.AuthorID).
			Msg("failed to insert note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// UpdateNote merge-updates the note: only the columns named in fields change,
// plus updated_at which is always refreshed. The WHERE clause binds both id
// and author_id, so foreign notes report [ErrNoteNotFound].
func (p *noteRepository) UpdateNote(ctx context.Context, id, ownerID string, fields map[string]any) error {
	log := logger.FromContext(ctx)

	update := p.builder.Update("notes")

	applied := 0
	for field, value := range fields {
		column, ok := noteColumns[field]
		if !ok {
			log.Warn().
				Str("func", "noteRepository.UpdateNote").
				Str("field", field).
				Msg("skipping unknown note field")
			continue
		}
		if jsonColumns[column] {
			value = encodeStringList(toStringList(value))
		}
		update = update.Set(column, value)
		applied++
	}
	if applied == 0 {
		return fmt.Errorf("%w: no updatable fields", ErrBuildingSQLQuery)
	}

	query, args, err := update.
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", id).
		Where("author_id = ?", ownerID).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", id).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", id).
			Str("owner_id", ownerID).
			Msg("failed to update note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// DeleteNote removes the note. Deleting an id that does not exist (or is
// owned by someone else) reports [ErrNoteNotFound].
func (p *noteRepository) DeleteNote(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := p.builder.
		Delete("notes").
		Where("id = ?", id).
		Where("author_id = ?", ownerID).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Str("owner_id", ownerID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func encodeStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeStringList(data string) []string {
	if data == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(data), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}

// toStringList normalizes the loosely typed values arriving from JSON
// request bodies ([]any with string elements) into []string.
func toStringList(value any) []string {
	switch v := value.(type) {
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
