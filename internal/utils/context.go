// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// JWT token generation and validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user's identifier
// in the context. Used together with GetUserIDFromContext for type-safe
// retrieval.
var UserIDCtxKey = contextKey("userID")

// UserNameCtxKey is the key used to store the authenticated user's display
// name in the context.
var UserNameCtxKey = contextKey("userName")

// GetUserIDFromContext retrieves the user identifier from the context.
// Returns an empty string when the value is missing or has an unexpected
// type; the auth middleware guarantees it is set on authenticated routes.
func GetUserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDCtxKey).(string)
	return userID
}

// GetUserNameFromContext retrieves the user display name from the context.
func GetUserNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(UserNameCtxKey).(string)
	return name
}
