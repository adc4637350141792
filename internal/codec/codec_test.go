package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub-id/studyhub/models"
)

func TestDecodeNote_FullDocument(t *testing.T) {
	created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	updated := created.Add(2 * time.Hour)

	raw := models.RawDocument{
		ID: "note-1",
		Fields: map[string]any{
			models.FieldTitle:      "Calculus",
			models.FieldContent:    "Limits and derivatives",
			models.FieldSummary:    "short summary",
			models.FieldCategory:   models.CategoryMathematics,
			models.FieldTags:       []any{"math", "analysis"},
			models.FieldIsFavorite: true,
			models.FieldIsPublic:   false,
			models.FieldAuthorID:   "user-1",
			models.FieldAuthorName: "Dina",
			models.FieldCreatedAt:  created.Format(time.RFC3339Nano),
			models.FieldUpdatedAt:  updated.Format(time.RFC3339Nano),
			models.FieldSharedWith: []any{"user-2"},
		},
	}

	note := DecodeNote(raw.ID, raw)

	assert.Equal(t, "note-1", note.ID)
	assert.Equal(t, "Calculus", note.Title)
	assert.Equal(t, "Limits and derivatives", note.Content)
	assert.Equal(t, "short summary", note.Summary)
	assert.Equal(t, models.CategoryMathematics, note.Category)
	assert.Equal(t, []string{"math", "analysis"}, note.Tags)
	assert.True(t, note.IsFavorite)
	assert.False(t, note.IsPublic)
	assert.Equal(t, "user-1", note.AuthorID)
	assert.Equal(t, "Dina", note.AuthorName)
	assert.True(t, note.CreatedAt.Equal(created))
	assert.True(t, note.UpdatedAt.Equal(updated))
	assert.Equal(t, []string{"user-2"}, note.SharedWith)
}

// Decoding never fails: absent fields degrade to defaults.
func TestDecodeNote_EmptyDocumentDefaults(t *testing.T) {
	note := DecodeNote("note-2", models.RawDocument{ID: "note-2"})

	assert.Equal(t, "", note.Title)
	assert.Equal(t, "", note.Content)
	assert.Equal(t, models.CategoryOther, note.Category)
	assert.Equal(t, []string{}, note.Tags)
	assert.False(t, note.IsFavorite)
	assert.False(t, note.IsPublic)
	assert.Equal(t, []string{}, note.SharedWith)
}

func TestDecodeNote_MissingTagsYieldsEmptyList(t *testing.T) {
	raw := models.RawDocument{
		ID:     "note-3",
		Fields: map[string]any{models.FieldTitle: "No tags here"},
	}

	note := DecodeNote(raw.ID, raw)

	require.NotNil(t, note.Tags)
	assert.Empty(t, note.Tags)
}

func TestDecodeNote_MalformedTimestampFallsBackToNow(t *testing.T) {
	before := time.Now()
	raw := models.RawDocument{
		ID: "note-4",
		Fields: map[string]any{
			models.FieldCreatedAt: "not-a-timestamp",
			models.FieldUpdatedAt: 12, // wrong type entirely
		},
	}

	note := DecodeNote(raw.ID, raw)
	after := time.Now()

	assert.False(t, note.CreatedAt.Before(before))
	assert.False(t, note.CreatedAt.After(after))
	assert.False(t, note.UpdatedAt.Before(before))
	assert.False(t, note.UpdatedAt.After(after))
}

func TestDecodeNote_UnknownCategoryIsKept(t *testing.T) {
	// The codec only substitutes the default for an absent category;
	// normalization of unknown values happens at write time.
	raw := models.RawDocument{
		ID:     "note-5",
		Fields: map[string]any{models.FieldCategory: "Astrology"},
	}

	note := DecodeNote(raw.ID, raw)
	assert.Equal(t, "Astrology", note.Category)
}

func TestDecodeSnapshot_PreservesOrder(t *testing.T) {
	snapshot := models.Snapshot{
		OwnerID: "user-1",
		Documents: []models.RawDocument{
			{ID: "a", Fields: map[string]any{models.FieldTitle: "first"}},
			{ID: "b", Fields: map[string]any{models.FieldTitle: "second"}},
		},
	}

	notes := DecodeSnapshot(snapshot)

	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].ID)
	assert.Equal(t, "b", notes[1].ID)
}

func TestEncodeForm_OnlyFormFields(t *testing.T) {
	form := models.NoteFormData{
		Title:    "Arrays",
		Content:  "Contiguous memory",
		Category: models.CategoryProgramming,
		Tags:     []string{"cs"},
		IsPublic: true,
	}

	raw := EncodeForm(form)

	assert.Equal(t, "Arrays", raw.Fields[models.FieldTitle])
	assert.Equal(t, "Contiguous memory", raw.Fields[models.FieldContent])
	assert.Equal(t, models.CategoryProgramming, raw.Fields[models.FieldCategory])
	assert.Equal(t, []string{"cs"}, raw.Fields[models.FieldTags])
	assert.Equal(t, true, raw.Fields[models.FieldIsPublic])

	// Server-managed fields must never be emitted by the codec.
	for _, forbidden := range []string{
		models.FieldAuthorID,
		models.FieldAuthorName,
		models.FieldCreatedAt,
		models.FieldUpdatedAt,
		models.FieldIsFavorite,
		models.FieldSharedWith,
	} {
		_, present := raw.Fields[forbidden]
		assert.Falsef(t, present, "field %q must not be encoded from form data", forbidden)
	}
}

func TestEncodeForm_NormalizesCategoryAndNilTags(t *testing.T) {
	raw := EncodeForm(models.NoteFormData{Title: "t", Content: "c", Category: "Astrology"})

	assert.Equal(t, models.CategoryOther, raw.Fields[models.FieldCategory])
	assert.Equal(t, []string{}, raw.Fields[models.FieldTags])
}

func TestEncodePartial_OnlyProvidedFields(t *testing.T) {
	raw := EncodePartial(map[string]any{
		models.FieldTitle:    "renamed",
		models.FieldCategory: "bogus",
	})

	require.Len(t, raw.Fields, 2)
	assert.Equal(t, "renamed", raw.Fields[models.FieldTitle])
	assert.Equal(t, models.CategoryOther, raw.Fields[models.FieldCategory])
}

func TestEncodeNote_RoundTripsThroughDecode(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	note := models.Note{
		ID:         "n1",
		Title:      "Calculus",
		Content:    "Limits",
		Summary:    "short",
		Category:   models.CategoryMathematics,
		Tags:       []string{"math"},
		IsFavorite: true,
		IsPublic:   true,
		AuthorID:   "user-1",
		AuthorName: "Dina",
		CreatedAt:  now,
		UpdatedAt:  now,
		SharedWith: []string{"u2"},
	}

	got := DecodeNote(note.ID, EncodeNote(note))
	assert.Equal(t, note, got)
}

func TestEncodeNote_NilListsBecomeEmpty(t *testing.T) {
	raw := EncodeNote(models.Note{ID: "n1"})

	assert.Equal(t, []string{}, raw.Fields[models.FieldTags])
	assert.Equal(t, []string{}, raw.Fields[models.FieldSharedWith])
}
