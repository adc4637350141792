// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/internal/utils"
)

// subscribe streams the caller's full note result set as Server-Sent
// Events. One snapshot event is pushed immediately, then one for every
// change to the owner's notes until the client disconnects. The stream
// carries whole snapshots, never deltas, so a dropped event can never
// desynchronize the client.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID := utils.GetUserIDFromContext(ctx)

	// the owner parameter is advisory; the JWT subject is authoritative
	if requested := r.URL.Query().Get("owner"); requested != "" && requested != ownerID {
		log.Error().
			Str("owner_id", ownerID).
			Str("requested_owner", requested).
			Msg("subscription requested for another user's notes")
		http.Error(w, "cannot subscribe to another user's notes", http.StatusForbidden)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Msg("response writer does not support streaming")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	changes, cancel := h.services.NotesService.Changes(ownerID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if !h.pushSnapshot(w, r, flusher, ownerID) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("owner_id", ownerID).Msg("subscriber disconnected")
			return
		case <-changes:
			if !h.pushSnapshot(w, r, flusher, ownerID) {
				return
			}
		}
	}
}

// pushSnapshot reads and writes one full snapshot. Returns false when the
// stream should end: either the write failed (client gone) or the snapshot
// could not be produced, in which case a terminal error event is sent.
func (h *Handler) pushSnapshot(w http.ResponseWriter, r *http.Request, flusher http.Flusher, ownerID string) bool {
	log := logger.FromRequest(r)

	snapshot, err := h.services.NotesService.Snapshot(r.Context(), ownerID)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("failed to produce snapshot for stream")
		fmt.Fprintf(w, "event: error\ndata: %s\n\n", "failed to read notes")
		flusher.Flush()
		return false
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("failed to encode snapshot")
		return false
	}

	if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload); err != nil {
		return false
	}
	flusher.Flush()

	log.Debug().
		Str("owner_id", ownerID).
		Int("documents", len(snapshot.Documents)).
		Msg("snapshot pushed")
	return true
}
