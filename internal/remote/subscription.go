// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package remote

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/studyhub-id/studyhub/models"
)

// sseSubscription consumes a text/event-stream body and turns "snapshot"
// events into models.Snapshot values. One goroutine (run) owns the stream;
// Close cancels the request context, which unblocks the reader.
type sseSubscription struct {
	body   io.ReadCloser
	cancel context.CancelFunc

	snapshots chan models.Snapshot
	errs      chan error

	closeOnce sync.Once
	done      chan struct{}
}

func newSSESubscription(body io.ReadCloser, cancel context.CancelFunc) *sseSubscription {
	return &sseSubscription{
		body:   body,
		cancel: cancel,
		// small buffer so a slow consumer does not immediately stall the
		// stream reader between snapshots
		snapshots: make(chan models.Snapshot, 4),
		errs:      make(chan error, 1),
		done:      make(chan struct{}),
	}
}

func (s *sseSubscription) Snapshots() <-chan models.Snapshot {
	return s.snapshots
}

func (s *sseSubscription) Errs() <-chan error {
	return s.errs
}

func (s *sseSubscription) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.cancel()
		s.body.Close()
	})
}

// run reads SSE frames until the stream ends. A frame is a series of
// "field: value" lines terminated by a blank line; only "event" and "data"
// fields are used.
func (s *sseSubscription) run() {
	defer close(s.snapshots)
	defer s.Close()

	scanner := bufio.NewScanner(s.body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	event := ""
	var data strings.Builder

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			s.dispatch(event, data.String())
			event = ""
			data.Reset()
			continue
		}

		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
		// comment lines (":keepalive") and unknown fields are ignored
	}

	select {
	case <-s.done:
		// closed deliberately, whatever ended the read is expected
		return
	default:
	}

	// The stream must outlive the session; any end the client did not ask
	// for is a delivery failure, including a clean EOF on server shutdown.
	err := scanner.Err()
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	select {
	case s.errs <- fmt.Errorf("%w: subscription stream ended: %v", ErrUnavailable, err):
	default:
	}
}

func (s *sseSubscription) dispatch(event, data string) {
	if data == "" {
		return
	}

	switch event {
	case "", "snapshot":
		var snapshot models.Snapshot
		if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
			// a malformed frame is dropped, the next snapshot supersedes it
			return
		}
		select {
		case s.snapshots <- snapshot:
		case <-s.done:
		}
	case "error":
		select {
		case s.errs <- fmt.Errorf("%w: %s", ErrFailedPrecondition, data):
		default:
		}
	}
}
