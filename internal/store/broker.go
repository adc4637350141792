// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package store

import (
	"sync"

	"github.com/studyhub-id/studyhub/internal/logger"
)

// Broker fans out note-change notifications to per-owner subscribers. The
// subscription transport uses it to learn when an owner's result set needs
// to be re-read and pushed again.
//
// Notifications are edge-triggered and coalescing: a subscriber channel has
// a buffer of one, so a burst of changes while the subscriber is busy
// collapses into a single pending signal.
type Broker struct {
	mu     sync.Mutex
	subs   map[string]map[chan struct{}]struct{}
	logger *logger.Logger
}

func NewBroker(log *logger.Logger) *Broker {
	if log == nil {
		log = logger.Nop()
	}
	return &Broker{
		subs:   make(map[string]map[chan struct{}]struct{}),
		logger: log,
	}
}

// Subscribe registers interest in changes to ownerID's notes. The returned
// cancel function must be called when the subscriber goes away; it is safe
// to call more than once.
func (b *Broker) Subscribe(ownerID string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	if b.subs[ownerID] == nil {
		b.subs[ownerID] = make(map[chan struct{}]struct{})
	}
	b.subs[ownerID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[ownerID], ch)
			if len(b.subs[ownerID]) == 0 {
				delete(b.subs, ownerID)
			}
		})
	}

	return ch, cancel
}

// Publish signals every subscriber of ownerID that the owner's notes
// changed. Never blocks; a subscriber with a signal already pending is
// skipped.
func (b *Broker) Publish(ownerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs[ownerID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
