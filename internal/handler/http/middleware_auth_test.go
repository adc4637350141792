package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub-id/studyhub/internal/service"
	"github.com/studyhub-id/studyhub/internal/utils"
	"github.com/studyhub-id/studyhub/models"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token after scheme", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "bare token without scheme", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tc.header)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

// runAuthMiddleware sends a request through the auth middleware into a
// recording next handler and reports whether it was reached and with which
// identity.
func runAuthMiddleware(t *testing.T, auth *fakeAuthService, header string) (*httptest.ResponseRecorder, *struct {
	reached  bool
	userID   string
	userName string
}) {
	t.Helper()

	seen := &struct {
		reached  bool
		userID   string
		userName string
	}{}

	h := newTestHandler(t, auth, nil)
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen.reached = true
		seen.userID = utils.GetUserIDFromContext(r.Context())
		seen.userName = utils.GetUserNameFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes/subscribe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuth_ValidToken_InjectsIdentity(t *testing.T) {
	auth := &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "abc.def.ghi", tokenString)
			return models.Token{UserID: "user-1", UserName: "Dina"}, nil
		},
	}

	rec, seen := runAuthMiddleware(t, auth, "Bearer abc.def.ghi")

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, seen.reached)
	assert.Equal(t, "user-1", seen.userID)
	assert.Equal(t, "Dina", seen.userName)
}

func TestAuth_RejectsWithUnauthorized(t *testing.T) {
	tests := []struct {
		name   string
		header string
		auth   *fakeAuthService
	}{
		{
			name:   "missing header",
			header: "",
			auth:   &fakeAuthService{},
		},
		{
			name:   "malformed header",
			header: "Bearer",
			auth:   &fakeAuthService{},
		},
		{
			name:   "expired token",
			header: "Bearer expired.token",
			auth: &fakeAuthService{
				parseTokenFn: func(context.Context, string) (models.Token, error) {
					return models.Token{}, service.ErrTokenIsExpired
				},
			},
		},
		{
			name:   "invalid token",
			header: "Bearer garbage.token",
			auth: &fakeAuthService{
				parseTokenFn: func(context.Context, string) (models.Token, error) {
					return models.Token{}, assert.AnError
				},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec, seen := runAuthMiddleware(t, tc.auth, tc.header)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, seen.reached, "handler must not run for rejected requests")
		})
	}
}
