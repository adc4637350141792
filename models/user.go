package models

import "time"

// User represents an account entity used for authentication.
// PasswordHash must never leave the service layer.
type User struct {
	// ID is the opaque unique identifier of the user.
	ID string `json:"id"`

	// Login is the unique login identifier (an email address in practice).
	Login string `json:"login"`

	// Name is the display name shown on notes the user authors.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Not exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the register/login request payload.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// Session identifies an authenticated user for the duration of a login.
// The note store's subscription lifecycle is driven by session start/end.
type Session struct {
	// UserID is the authenticated user's identifier; used as the owner
	// scope for the note subscription.
	UserID string `json:"user_id"`

	// UserName is the display name captured at login, denormalized onto
	// created notes.
	UserName string `json:"user_name"`

	// Token is the bearer token presented to the remote store.
	Token string `json:"token"`

	// StartedAt records when the session began.
	StartedAt time.Time `json:"started_at"`
}

// Valid reports whether the session carries an authenticated user.
func (s Session) Valid() bool {
	return s.UserID != "" && s.Token != ""
}
