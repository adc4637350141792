package http

import (
	"net/http"
	"time"

	"github.com/studyhub-id/studyhub/internal/logger"
)

// withLogging emits one access-log line per request: method, URI, status,
// body size and wall time. The response writer is wrapped so the status
// and size can be read after the downstream handler returns.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
