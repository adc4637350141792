package notestore

import (
	"errors"

	"github.com/studyhub-id/studyhub/internal/remote"
)

// mapRemoteError translates a transport error from the remote document
// store into the domain taxonomy. The original error is expected to be
// logged by the caller; only the mapped, human-readable error propagates.
func mapRemoteError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, remote.ErrUnauthenticated):
		return ErrUnauthenticated
	case errors.Is(err, remote.ErrPermissionDenied):
		return ErrPermissionDenied
	case errors.Is(err, remote.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, remote.ErrFailedPrecondition):
		return ErrMisconfigured
	case errors.Is(err, remote.ErrUnavailable):
		return ErrUnavailable
	case errors.Is(err, remote.ErrBadRequest):
		return ErrValidation
	default:
		return ErrUnknown
	}
}
