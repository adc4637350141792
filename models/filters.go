package models

// NoteFilters describes the active constraints for deriving a filtered
// note view. Pure value object; recomputed per view request, never stored.
type NoteFilters struct {
	// Category keeps only notes whose category equals this value.
	// Empty means no category constraint.
	Category string `json:"category"`

	// Tags keeps a note when at least one of its tags contains
	// (case-insensitively) at least one of these values.
	Tags []string `json:"tags"`

	// FavoriteOnly drops non-favorite notes when true.
	FavoriteOnly bool `json:"favoriteOnly"`

	// SearchQuery is matched case-insensitively against title, content,
	// tags, category and author name. Empty matches everything.
	SearchQuery string `json:"searchQuery"`
}

// IsZero reports whether no constraint is active.
func (f NoteFilters) IsZero() bool {
	return f.Category == "" && len(f.Tags) == 0 && !f.FavoriteOnly && f.SearchQuery == ""
}
