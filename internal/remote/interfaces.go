// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

// Package remote implements the client side of the remote document store
// contract: owner-scoped realtime snapshot subscriptions plus insert,
// merge-update and delete writes, all over HTTP. Transport failures are
// mapped to a small sentinel taxonomy; callers never see raw status codes.
package remote

import (
	"context"

	"github.com/studyhub-id/studyhub/models"
)

// DocumentStore is the capability surface of the remote document store.
type DocumentStore interface {
	// Insert writes a new document and returns the server-assigned id.
	Insert(ctx context.Context, doc models.RawDocument) (string, error)

	// Update merge-updates the document with the given id: only the fields
	// present in doc are written, everything else stays untouched.
	Update(ctx context.Context, id string, doc models.RawDocument) error

	// Delete removes the document with the given id.
	Delete(ctx context.Context, id string) error

	// Subscribe opens a realtime subscription scoped to ownerID. The store
	// pushes the full matching result set on every change affecting it.
	// The subscription stays open until Close is called or ctx is cancelled.
	Subscribe(ctx context.Context, ownerID string) (Subscription, error)
}

// Subscription is a cancelable handle on a realtime snapshot stream.
// Close must be called deterministically when the owning session ends;
// a dangling subscription keeps delivering snapshots for a user who is
// no longer authenticated.
type Subscription interface {
	// Snapshots delivers complete result sets in the order the backend
	// emits them. The channel is closed after Close or a terminal error.
	Snapshots() <-chan models.Snapshot

	// Errs delivers at most one terminal subscription error.
	Errs() <-chan error

	// Close tears the subscription down and releases the underlying
	// stream. Safe to call more than once.
	Close()
}

// AuthClient covers the register/login surface of the backing service.
// Kept separate from DocumentStore: the note store itself never
// authenticates, it only consumes an already established session.
type AuthClient interface {
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
}
