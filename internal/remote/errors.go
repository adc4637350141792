package remote

import "errors"

// Transport-level error taxonomy of the remote document store. The note
// store maps these onto user-facing domain errors; nothing above this
// package inspects HTTP status codes.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrUnavailable        = errors.New("service unavailable")
	ErrInternal           = errors.New("internal server error")
)
