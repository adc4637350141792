package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesTraceIDWhenAbsent(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace id must be a valid UUID")
}

func TestWithTraceID_BlankHeaderGetsFreshID(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "   ")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	traceID := rec.Header().Get(traceIDHeader)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "whitespace-only trace id must be replaced with a UUID")
}

func TestWithTraceID_PropagatesIncomingTraceID(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-from-upstream")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-upstream", rec.Header().Get(traceIDHeader))
}
