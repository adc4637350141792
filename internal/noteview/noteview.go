// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

// Package noteview derives filtered and sorted views over an in-memory
// note collection. All functions are pure: they never mutate the input
// slice and always return a fresh one.
//
// This is a deliberate multi-pass filter, not an index. The working set
// is a single user's notes (tens to low thousands), so linear scans are
// fine.
package noteview

import (
	"sort"
	"strings"

	"github.com/studyhub-id/studyhub/models"
)

// Apply filters notes by the given spec and orders the result by sortKey.
// The filter passes are independent, so their order does not affect the
// result set.
func Apply(notes []models.Note, filters models.NoteFilters, sortKey models.SortKey) []models.Note {
	result := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if matches(note, filters) {
			result = append(result, note)
		}
	}

	Sort(result, sortKey)
	return result
}

// Sort orders notes in place by the given key. Unknown keys fall back to
// SortUpdatedDesc. Sorting is stable so equal elements keep their relative
// order.
func Sort(notes []models.Note, sortKey models.SortKey) {
	switch sortKey {
	case models.SortCreatedDesc:
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		})
	case models.SortTitleAsc:
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].Title < notes[j].Title
		})
	default:
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
		})
	}
}

// PublicOnly returns the notes flagged as public, preserving order.
func PublicOnly(notes []models.Note) []models.Note {
	result := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if note.IsPublic {
			result = append(result, note)
		}
	}
	return result
}

// ByAuthor returns the notes authored by the given user, preserving order.
func ByAuthor(notes []models.Note, authorID string) []models.Note {
	result := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if note.AuthorID == authorID {
			result = append(result, note)
		}
	}
	return result
}

func matches(note models.Note, filters models.NoteFilters) bool {
	if filters.Category != "" && note.Category != filters.Category {
		return false
	}

	if len(filters.Tags) > 0 && !matchesAnyTag(note.Tags, filters.Tags) {
		return false
	}

	if filters.FavoriteOnly && !note.IsFavorite {
		return false
	}

	if filters.SearchQuery != "" && !matchesQuery(note, filters.SearchQuery) {
		return false
	}

	return true
}

// matchesAnyTag reports whether at least one note tag contains
// (case-insensitively) at least one of the wanted tags.
func matchesAnyTag(noteTags, wantedTags []string) bool {
	for _, wanted := range wantedTags {
		wanted = strings.ToLower(wanted)
		for _, tag := range noteTags {
			if strings.Contains(strings.ToLower(tag), wanted) {
				return true
			}
		}
	}
	return false
}

// matchesQuery performs case-insensitive substring search over title,
// content, tags, category and author name.
func matchesQuery(note models.Note, query string) bool {
	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(note.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(note.Content), query) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(note.Category), query) {
		return true
	}
	return strings.Contains(strings.ToLower(note.AuthorName), query)
}
