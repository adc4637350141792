package noteview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub-id/studyhub/models"
)

func sampleNotes() []models.Note {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return []models.Note{
		{
			ID:         "n1",
			Title:      "Calculus",
			Content:    "Limits and derivatives",
			Category:   models.CategoryMathematics,
			Tags:       []string{"math"},
			IsFavorite: false,
			AuthorName: "Dina",
			CreatedAt:  base,
			UpdatedAt:  base.Add(1 * time.Hour),
		},
		{
			ID:         "n2",
			Title:      "Arrays",
			Content:    "Contiguous memory",
			Category:   models.CategoryProgramming,
			Tags:       []string{"cs"},
			IsFavorite: true,
			AuthorName: "Dina",
			CreatedAt:  base.Add(1 * time.Hour),
			UpdatedAt:  base.Add(3 * time.Hour),
		},
		{
			ID:         "n3",
			Title:      "Cells",
			Content:    "Cell biology notes",
			Category:   models.CategoryBiology,
			Tags:       []string{"bio"},
			IsFavorite: false,
			AuthorName: "Dina",
			CreatedAt:  base.Add(2 * time.Hour),
			UpdatedAt:  base.Add(2 * time.Hour),
		},
	}
}

func titles(notes []models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}

func TestApply_FavoriteOnly(t *testing.T) {
	got := Apply(sampleNotes(), models.NoteFilters{FavoriteOnly: true}, models.SortUpdatedDesc)
	assert.Equal(t, []string{"Arrays"}, titles(got))
}

func TestApply_SearchQueryCaseInsensitive(t *testing.T) {
	got := Apply(sampleNotes(), models.NoteFilters{SearchQuery: "ar"}, models.SortUpdatedDesc)
	assert.Equal(t, []string{"Arrays"}, titles(got))

	got = Apply(sampleNotes(), models.NoteFilters{SearchQuery: "AR"}, models.SortUpdatedDesc)
	assert.Equal(t, []string{"Arrays"}, titles(got))
}

func TestApply_SearchMatchesContentTagsCategoryAuthor(t *testing.T) {
	notes := sampleNotes()

	byContent := Apply(notes, models.NoteFilters{SearchQuery: "contiguous"}, models.SortUpdatedDesc)
	assert.Equal(t, []string{"Arrays"}, titles(byContent))

	byTag := Apply(notes, models.NoteFilters{SearchQuery: "bio"}, models.SortUpdatedDesc)
	assert.Contains(t, titles(byTag), "Cells")

	byCategory := Apply(notes, models.NoteFilters{SearchQuery: "programming"}, models.SortUpdatedDesc)
	assert.Equal(t, []string{"Arrays"}, titles(byCategory))

	byAuthor := Apply(notes, models.NoteFilters{SearchQuery: "dina"}, models.SortUpdatedDesc)
	assert.Len(t, byAuthor, 3)
}

// An empty query leaves the (otherwise filtered) set unchanged.
func TestApply_EmptyQueryMatchesEverything(t *testing.T) {
	all := Apply(sampleNotes(), models.NoteFilters{}, models.SortUpdatedDesc)
	assert.Len(t, all, 3)

	favsOnly := Apply(sampleNotes(), models.NoteFilters{FavoriteOnly: true, SearchQuery: ""}, models.SortUpdatedDesc)
	assert.Equal(t, []string{"Arrays"}, titles(favsOnly))
}

// Filter passes are independent: category-then-tags equals tags-then-category.
func TestApply_FilterOrderIndependence(t *testing.T) {
	notes := sampleNotes()

	categoryFirst := Apply(
		Apply(notes, models.NoteFilters{Category: models.CategoryProgramming}, models.SortTitleAsc),
		models.NoteFilters{Tags: []string{"cs"}},
		models.SortTitleAsc,
	)
	tagsFirst := Apply(
		Apply(notes, models.NoteFilters{Tags: []string{"cs"}}, models.SortTitleAsc),
		models.NoteFilters{Category: models.CategoryProgramming},
		models.SortTitleAsc,
	)
	combined := Apply(notes, models.NoteFilters{
		Category: models.CategoryProgramming,
		Tags:     []string{"cs"},
	}, models.SortTitleAsc)

	assert.Equal(t, titles(categoryFirst), titles(tagsFirst))
	assert.Equal(t, titles(categoryFirst), titles(combined))
}

func TestApply_TagFilterSubstringMatch(t *testing.T) {
	notes := []models.Note{
		{ID: "a", Title: "One", Tags: []string{"golang-basics"}},
		{ID: "b", Title: "Two", Tags: []string{"python"}},
	}

	got := Apply(notes, models.NoteFilters{Tags: []string{"GOLANG"}}, models.SortTitleAsc)
	assert.Equal(t, []string{"One"}, titles(got))
}

func TestSort_TitleAscendingStable(t *testing.T) {
	ts := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	notes := []models.Note{
		{ID: "b1", Title: "Beta", UpdatedAt: ts},
		{ID: "a1", Title: "Alpha", UpdatedAt: ts},
		{ID: "b2", Title: "Beta", UpdatedAt: ts},
	}

	Sort(notes, models.SortTitleAsc)

	require.Equal(t, []string{"Alpha", "Beta", "Beta"}, titles(notes))
	// stable: equal titles keep their original relative order
	assert.Equal(t, "b1", notes[1].ID)
	assert.Equal(t, "b2", notes[2].ID)

	for i := 1; i < len(notes); i++ {
		assert.LessOrEqual(t, notes[i-1].Title, notes[i].Title)
	}
}

func TestSort_DefaultIsUpdatedDescending(t *testing.T) {
	notes := sampleNotes()
	Sort(notes, models.SortKey("bogus"))
	assert.Equal(t, []string{"Arrays", "Cells", "Calculus"}, titles(notes))
}

func TestSort_CreatedDescending(t *testing.T) {
	notes := sampleNotes()
	Sort(notes, models.SortCreatedDesc)
	assert.Equal(t, []string{"Cells", "Arrays", "Calculus"}, titles(notes))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	notes := sampleNotes()
	_ = Apply(notes, models.NoteFilters{}, models.SortTitleAsc)
	assert.Equal(t, []string{"Calculus", "Arrays", "Cells"}, titles(notes))
}

func TestPublicOnlyAndByAuthor(t *testing.T) {
	notes := []models.Note{
		{ID: "a", Title: "Pub", IsPublic: true, AuthorID: "u1"},
		{ID: "b", Title: "Priv", AuthorID: "u2"},
	}

	assert.Equal(t, []string{"Pub"}, titles(PublicOnly(notes)))
	assert.Equal(t, []string{"Priv"}, titles(ByAuthor(notes, "u2")))
}
