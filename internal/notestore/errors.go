package notestore

import "errors"

// Domain error taxonomy surfaced to UI-facing callers. Messages are
// human-readable on purpose: raw transport errors are logged, never shown.
var (
	// ErrUnauthenticated is returned when an operation requiring an active
	// session is attempted without one. No remote call is made in that case.
	ErrUnauthenticated = errors.New("you must be logged in to work with notes")

	// ErrNotFound means the target note does not exist or is not owned by
	// the caller.
	ErrNotFound = errors.New("note not found")

	// ErrPermissionDenied means the backend rejected the request through
	// its access rules.
	ErrPermissionDenied = errors.New("no permission to access these notes")

	// ErrUnavailable means the backend could not be reached or reported a
	// transient outage. Retrying later may succeed.
	ErrUnavailable = errors.New("notes service is unavailable, try again later")

	// ErrMisconfigured means the backend is reachable but rejects requests
	// because of a setup problem (missing index, bad access rules).
	ErrMisconfigured = errors.New("notes backend is not configured correctly")

	// ErrValidation means the caller-supplied data is insufficient,
	// e.g. an empty title or content.
	ErrValidation = errors.New("title and content are required")

	// ErrUnknown covers everything the taxonomy cannot classify.
	ErrUnknown = errors.New("an unknown error occurred while working with notes")
)
