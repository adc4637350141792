// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

// Package notestore keeps the authoritative in-memory collection of the
// current user's notes, synchronized with the remote document store over
// a realtime subscription, and mediates all mutations.
//
// Lifecycle per authenticated session:
//
//	Idle --OnSessionStart--> Subscribing --snapshot--> Live
//	                                    \--error-----> Errored
//	any state --OnSessionEnd--> Idle
//
// The collection is replaced wholesale by each incoming snapshot and is
// never partially mutated by operation callers, so the local view cannot
// diverge from the remote state. Writes follow a wait-for-snapshot
// discipline: a successful mutation is durable remotely and shows up in
// the collection with the next snapshot, not synchronously.
package notestore

import (
	"context"
	"fmt"
	"sync"

	"github.com/studyhub-id/studyhub/internal/codec"
	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/internal/noteview"
	"github.com/studyhub-id/studyhub/internal/remote"
	"github.com/studyhub-id/studyhub/models"
)

// State is the note store's session lifecycle state.
type State int

const (
	// StateIdle — no session, empty collection, no subscription.
	StateIdle State = iota

	// StateSubscribing — session started, waiting for the first snapshot.
	StateSubscribing

	// StateLive — subscription delivering snapshots.
	StateLive

	// StateErrored — subscription delivery failed; the collection holds
	// the last known good snapshot until a new session starts.
	StateErrored
)

// Store is the per-session note cache and the sole mutation path.
type Store struct {
	remote remote.DocumentStore
	logger *logger.Logger

	mu      sync.RWMutex
	session models.Session
	state   State
	notes   []models.Note
	lastErr error
	// run identifies the active subscription consumer; a stale consumer
	// whose run token no longer matches must not touch the collection
	run *struct{}

	lifecycleMu sync.Mutex
	sub         remote.Subscription
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// New constructs an idle Store. The session is passed in explicitly via
// OnSessionStart; the store never reads ambient authentication state.
func New(documentStore remote.DocumentStore, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		remote: documentStore,
		logger: log,
		state:  StateIdle,
	}
}

// OnSessionStart opens an owner-scoped subscription for the session's user
// and starts consuming snapshots. Any previous session is torn down first.
// The returned error is already mapped to the domain taxonomy.
func (s *Store) OnSessionStart(ctx context.Context, session models.Session) error {
	if !session.Valid() {
		return ErrUnauthenticated
	}

	s.OnSessionEnd()

	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	runToken := &struct{}{}
	s.mu.Lock()
	s.session = session
	s.state = StateSubscribing
	s.lastErr = nil
	s.run = runToken
	s.mu.Unlock()

	subCtx, cancel := context.WithCancel(ctx)
	sub, err := s.remote.Subscribe(subCtx, session.UserID)
	if err != nil {
		cancel()
		s.logger.Err(err).
			Str("func", "Store.OnSessionStart").
			Str("user_id", session.UserID).
			Msg("failed to open note subscription")

		mapped := mapRemoteError(err)
		s.mu.Lock()
		s.state = StateErrored
		s.lastErr = mapped
		s.mu.Unlock()
		return mapped
	}

	s.sub = sub
	s.cancel = cancel
	s.wg.Add(1)
	go s.consume(sub, runToken, session.UserID)

	return nil
}

// OnSessionEnd tears down the subscription and clears the collection,
// error and session. It blocks until the consumer goroutine has exited,
// so no snapshot scoped to the former user can be applied afterwards.
func (s *Store) OnSessionEnd() {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	s.mu.Lock()
	s.run = nil
	s.mu.Unlock()

	if s.sub != nil {
		s.sub.Close()
		s.sub = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()

	s.mu.Lock()
	s.session = models.Session{}
	s.state = StateIdle
	s.notes = nil
	s.lastErr = nil
	s.mu.Unlock()
}

// consume owns the subscription channels for one session run. It is the
// only writer of the notes collection.
func (s *Store) consume(sub remote.Subscription, runToken *struct{}, userID string) {
	defer s.wg.Done()

	snapshots := sub.Snapshots()
	errs := sub.Errs()

	errored := false
	for {
		select {
		case snapshot, ok := <-snapshots:
			if !ok {
				if !errored {
					s.applyStreamEnd(errs, runToken, userID)
				}
				return
			}
			s.applySnapshot(snapshot, runToken, userID)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			errored = true
			s.applySubscriptionError(err, runToken, userID)
		}
	}
}

// applyStreamEnd handles the snapshot channel closing before any terminal
// error was consumed. A stream that ends while the session is still current
// can never deliver again, so the store must not keep reporting Live; the
// subscription's own error is preferred when one is pending, otherwise the
// silent end is treated as lost delivery.
func (s *Store) applyStreamEnd(errs <-chan error, runToken *struct{}, userID string) {
	select {
	case err, ok := <-errs:
		if ok && err != nil {
			s.applySubscriptionError(err, runToken, userID)
			return
		}
	default:
	}

	s.applySubscriptionError(
		fmt.Errorf("%w: subscription stream closed", remote.ErrUnavailable),
		runToken, userID,
	)
}

func (s *Store) applySnapshot(snapshot models.Snapshot, runToken *struct{}, userID string) {
	notes := codec.DecodeSnapshot(snapshot)
	// sort locally so the server does not need a composite index
	noteview.Sort(notes, models.SortUpdatedDesc)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run != runToken {
		// session ended or restarted while this snapshot was in flight
		return
	}
	s.notes = notes
	s.state = StateLive
	s.lastErr = nil

	s.logger.Debug().
		Str("func", "Store.applySnapshot").
		Str("user_id", userID).
		Int("notes", len(notes)).
		Msg("snapshot applied")
}

func (s *Store) applySubscriptionError(err error, runToken *struct{}, userID string) {
	s.logger.Err(err).
		Str("func", "Store.applySubscriptionError").
		Str("user_id", userID).
		Msg("note subscription delivery failed")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run != runToken {
		return
	}
	// collection is left at its last known state on purpose
	s.state = StateErrored
	s.lastErr = mapRemoteError(err)
}

// Create validates defensively (empty title/content never reaches the
// remote store), writes the form fields and returns the new note id.
// Server-managed fields — id, author, timestamps, favorite flag, share
// list — are injected by the backend from the authenticated session, so
// a client cannot spoof ownership or timestamps. The collection reflects
// the new note once the next snapshot arrives.
func (s *Store) Create(ctx context.Context, form models.NoteFormData) (string, error) {
	if _, err := s.requireSession(); err != nil {
		return "", err
	}
	if form.Title == "" || form.Content == "" {
		return "", ErrValidation
	}

	id, err := s.remote.Insert(ctx, codec.EncodeForm(form))
	if err != nil {
		s.logger.Err(err).
			Str("func", "Store.Create").
			Msg("failed to create note")
		return "", mapRemoteError(err)
	}

	return id, nil
}

// Update merge-updates the note: only the provided fields change, and the
// backend refreshes updatedAt. Unknown ids and foreign notes surface as
// ErrNotFound; ownership enforcement lives in the backend's access rules.
func (s *Store) Update(ctx context.Context, id string, partial map[string]any) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	if len(partial) == 0 {
		return nil
	}

	if err := s.remote.Update(ctx, id, codec.EncodePartial(partial)); err != nil {
		s.logger.Err(err).
			Str("func", "Store.Update").
			Str("note_id", id).
			Msg("failed to update note")
		return mapRemoteError(err)
	}

	return nil
}

// Delete removes the note. Idempotent from the caller's perspective:
// deleting an id that no longer exists is treated as a no-op, not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		mapped := mapRemoteError(err)
		if mapped == ErrNotFound {
			s.logger.Debug().
				Str("func", "Store.Delete").
				Str("note_id", id).
				Msg("delete target already absent")
			return nil
		}
		s.logger.Err(err).
			Str("func", "Store.Delete").
			Str("note_id", id).
			Msg("failed to delete note")
		return mapped
	}

	return nil
}

// ToggleFavorite reads the current flag from the local cache and writes
// the negation. Two racing toggles before a snapshot refresh resolve as
// last-write-wins; no compare-and-swap is provided or required.
func (s *Store) ToggleFavorite(ctx context.Context, id string) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}

	note, ok := s.GetByID(id)
	if !ok {
		return ErrNotFound
	}

	return s.Update(ctx, id, map[string]any{
		models.FieldIsFavorite: !note.IsFavorite,
	})
}

// Share replaces the note's share list wholesale (not additive).
func (s *Store) Share(ctx context.Context, id string, userIDs []string) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	if userIDs == nil {
		userIDs = []string{}
	}

	return s.Update(ctx, id, map[string]any{
		models.FieldSharedWith: userIDs,
	})
}

// SetSummary stores AI-generated summary text on the note verbatim.
func (s *Store) SetSummary(ctx context.Context, id, summary string) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}

	return s.Update(ctx, id, map[string]any{
		models.FieldSummary: summary,
	})
}

// GetByID is a pure lookup against the in-memory collection; it never
// triggers a remote fetch.
func (s *Store) GetByID(id string) (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, note := range s.notes {
		if note.ID == id {
			return note, true
		}
	}
	return models.Note{}, false
}

// Notes returns a copy of the current collection, ordered by UpdatedAt
// descending. Consumers must not mutate notes in place; the copy keeps
// them honest.
func (s *Store) Notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Filtered derives a filtered, sorted view over the current collection.
func (s *Store) Filtered(filters models.NoteFilters, sortKey models.SortKey) []models.Note {
	return noteview.Apply(s.Notes(), filters, sortKey)
}

// State reports the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the persistent subscription-level error, if any. Mutation
// errors are transient and never stored here.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Session returns the active session.
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *Store) requireSession() (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.Valid() {
		return models.Session{}, ErrUnauthenticated
	}
	return s.session, nil
}
