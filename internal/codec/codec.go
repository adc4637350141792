// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

// Package codec converts between the untyped document representation
// delivered by the remote document store and the typed Note model.
//
// Decoding never fails: missing or malformed fields degrade to documented
// defaults so a bad document can never block rendering. Encoding performs
// no validation and emits only caller-supplied form fields; server-managed
// fields (author, timestamps, favorite flag, share list) are injected by
// the store layer, never by the codec.
package codec

import (
	"encoding/json"
	"time"

	"github.com/studyhub-id/studyhub/models"
)

// DecodeNote maps a raw stored document onto a Note.
//
// Fallbacks for absent or mistyped fields: empty string for text, empty
// list for tags/sharedWith, false for flags, CategoryOther for category.
// Timestamp fields that cannot be interpreted fall back to time.Now() —
// a deliberate weak fallback, not an error.
func DecodeNote(id string, raw models.RawDocument) models.Note {
	fields := raw.Fields
	if fields == nil {
		fields = map[string]any{}
	}

	category := asString(fields[models.FieldCategory])
	if category == "" {
		category = models.CategoryOther
	}

	return models.Note{
		ID:         id,
		Title:      asString(fields[models.FieldTitle]),
		Content:    asString(fields[models.FieldContent]),
		Summary:    asString(fields[models.FieldSummary]),
		Category:   category,
		Tags:       asStringSlice(fields[models.FieldTags]),
		IsFavorite: asBool(fields[models.FieldIsFavorite]),
		IsPublic:   asBool(fields[models.FieldIsPublic]),
		AuthorID:   asString(fields[models.FieldAuthorID]),
		AuthorName: asString(fields[models.FieldAuthorName]),
		CreatedAt:  asTime(fields[models.FieldCreatedAt]),
		UpdatedAt:  asTime(fields[models.FieldUpdatedAt]),
		SharedWith: asStringSlice(fields[models.FieldSharedWith]),
	}
}

// DecodeSnapshot decodes every document of a snapshot in delivery order.
func DecodeSnapshot(snapshot models.Snapshot) []models.Note {
	notes := make([]models.Note, 0, len(snapshot.Documents))
	for _, doc := range snapshot.Documents {
		notes = append(notes, DecodeNote(doc.ID, doc))
	}
	return notes
}

// EncodeForm maps caller-editable form fields to a raw document for write.
// The category is normalized to the closed set; a nil tag list encodes as
// an empty list so the stored document always carries the field.
func EncodeForm(form models.NoteFormData) models.RawDocument {
	tags := form.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.RawDocument{
		Fields: map[string]any{
			models.FieldTitle:    form.Title,
			models.FieldContent:  form.Content,
			models.FieldCategory: models.NormalizeCategory(form.Category),
			models.FieldTags:     tags,
			models.FieldIsPublic: form.IsPublic,
		},
	}
}

// EncodeNote maps a stored note to its full wire document. This is the
// server side of the snapshot push; timestamps are carried as time.Time
// and serialize to RFC 3339 on the wire.
func EncodeNote(note models.Note) models.RawDocument {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	sharedWith := note.SharedWith
	if sharedWith == nil {
		sharedWith = []string{}
	}

	return models.RawDocument{
		ID: note.ID,
		Fields: map[string]any{
			models.FieldTitle:      note.Title,
			models.FieldContent:    note.Content,
			models.FieldSummary:    note.Summary,
			models.FieldCategory:   note.Category,
			models.FieldTags:       tags,
			models.FieldIsFavorite: note.IsFavorite,
			models.FieldIsPublic:   note.IsPublic,
			models.FieldAuthorID:   note.AuthorID,
			models.FieldAuthorName: note.AuthorName,
			models.FieldCreatedAt:  note.CreatedAt,
			models.FieldUpdatedAt:  note.UpdatedAt,
			models.FieldSharedWith: sharedWith,
		},
	}
}

// EncodePartial returns a raw document containing only the fields present
// in partial. Used for merge updates, where absent fields must stay
// untouched remotely.
func EncodePartial(partial map[string]any) models.RawDocument {
	fields := make(map[string]any, len(partial))
	for k, v := range partial {
		if k == models.FieldCategory {
			fields[k] = models.NormalizeCategory(asString(v))
			continue
		}
		fields[k] = v
	}
	return models.RawDocument{Fields: fields}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		out := make([]string, len(vals))
		copy(out, vals)
		return out
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case json.Number:
		if ms, err := t.Int64(); err == nil {
			return time.UnixMilli(ms)
		}
	case float64:
		return time.UnixMilli(int64(t))
	}
	return time.Now()
}
