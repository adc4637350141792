package models

import "time"

// Note is the core study-note entity persisted in the remote document store.
// Server-managed fields (ID, AuthorID, AuthorName, CreatedAt, UpdatedAt) are
// assigned by the store on write and must never be supplied by callers.
type Note struct {
	// ID is the opaque unique identifier assigned by the store on creation.
	// Immutable for the lifetime of the note.
	ID string `json:"id"`

	// Title is the note headline. Non-empty at save time; enforced by the
	// form layer, re-checked defensively by the store.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// Summary holds AI-generated summary text. Empty until an assist
	// operation populates it.
	Summary string `json:"summary,omitempty"`

	// Category is one of NoteCategories. Unknown values normalize to
	// CategoryOther.
	Category string `json:"category"`

	// Tags is an ordered list of user-supplied tags. May be empty; the
	// store does not deduplicate.
	Tags []string `json:"tags"`

	// IsFavorite is toggled only via the dedicated toggle operation.
	IsFavorite bool `json:"isFavorite"`

	// IsPublic marks the note as visible outside the owner's workspace.
	// Visibility flag only; no client-side access control is derived from it.
	IsPublic bool `json:"isPublic"`

	// AuthorID is the owner's identifier, set once at creation.
	AuthorID string `json:"authorId"`

	// AuthorName is the owner's display name, denormalized at creation time.
	AuthorName string `json:"authorName"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed by the server on every mutating operation.
	UpdatedAt time.Time `json:"updatedAt"`

	// SharedWith lists user identifiers the note is shared with.
	SharedWith []string `json:"sharedWith,omitempty"`
}

// NoteFormData carries the caller-editable fields of a note. Everything
// else on Note is injected server-side.
type NoteFormData struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	IsPublic bool     `json:"isPublic"`
}

// Note categories form a fixed closed set. Anything outside the set is
// stored as CategoryOther.
const (
	CategoryMathematics = "Mathematics"
	CategoryProgramming = "Programming"
	CategoryPhysics     = "Physics"
	CategoryChemistry   = "Chemistry"
	CategoryBiology     = "Biology"
	CategoryHistory     = "History"
	CategoryLanguage    = "Language"
	CategoryEconomics   = "Economics"
	CategoryPsychology  = "Psychology"
	CategoryOther       = "Other"
)

// NoteCategories lists every valid note category in display order.
var NoteCategories = []string{
	CategoryMathematics,
	CategoryProgramming,
	CategoryPhysics,
	CategoryChemistry,
	CategoryBiology,
	CategoryHistory,
	CategoryLanguage,
	CategoryEconomics,
	CategoryPsychology,
	CategoryOther,
}

// NormalizeCategory returns category if it is a member of NoteCategories,
// CategoryOther otherwise (including the empty string).
func NormalizeCategory(category string) string {
	for _, c := range NoteCategories {
		if c == category {
			return c
		}
	}
	return CategoryOther
}

// SortKey selects the ordering of a derived note view.
type SortKey string

const (
	// SortUpdatedDesc orders by UpdatedAt descending. Default.
	SortUpdatedDesc SortKey = "updated"

	// SortCreatedDesc orders by CreatedAt descending.
	SortCreatedDesc SortKey = "created"

	// SortTitleAsc orders by Title ascending, lexicographic and stable.
	SortTitleAsc SortKey = "title"
)
