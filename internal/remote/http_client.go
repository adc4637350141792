// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/studyhub-id/studyhub/models"
)

// HTTPClientConfig configures the HTTP document store client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// httpDocumentStore talks to the studyhub server over HTTP: resty for the
// unary write path, a plain net/http request with a streaming body for the
// SSE subscription (resty buffers responses, which does not work for an
// endless event stream).
type httpDocumentStore struct {
	client     *resty.Client
	httpClient *http.Client
	baseURL    string

	mu    sync.RWMutex
	token string
}

// NewHTTPDocumentStore constructs a DocumentStore+AuthClient backed by the
// studyhub HTTP API.
func NewHTTPDocumentStore(cfg HTTPClientConfig) *httpDocumentStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpDocumentStore{
		client:  cli,
		baseURL: baseURL,
		// no client-level timeout here: the subscription stream is long-lived
		httpClient: &http.Client{},
	}
}

// SetToken installs the bearer token used for all subsequent requests.
func (h *httpDocumentStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the currently installed bearer token.
func (h *httpDocumentStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpDocumentStore) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", creds)
}

func (h *httpDocumentStore) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", creds)
}

func (h *httpDocumentStore) authenticate(ctx context.Context, path string, creds models.Credentials) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("auth parse bearer token: %w", err)
	}
	userID, userName, err := parseIdentityFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth parse identity: %w", err)
	}

	h.SetToken(token)
	return models.Session{
		UserID:    userID,
		UserName:  userName,
		Token:     token,
		StartedAt: time.Now(),
	}, nil
}

func (h *httpDocumentStore) Insert(ctx context.Context, doc models.RawDocument) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Post("/api/notes/")
	if err != nil {
		return "", fmt.Errorf("insert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result models.InsertResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode insert response: %w", err)
	}

	return result.ID, nil
}

func (h *httpDocumentStore) Update(ctx context.Context, id string, doc models.RawDocument) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Patch("/api/notes/" + id)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDocumentStore) Delete(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/notes/" + id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Subscribe opens the SSE snapshot stream for ownerID. The server re-checks
// that ownerID matches the authenticated user; the parameter exists so the
// contract stays explicit on the wire.
func (h *httpDocumentStore) Subscribe(ctx context.Context, ownerID string) (Subscription, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	url := h.baseURL + "/api/notes/subscribe?owner=" + ownerID
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	if token := h.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		err = mapStatusError(resp.StatusCode, "")
		cancel()
		return nil, err
	}

	sub := newSSESubscription(resp.Body, cancel)
	go sub.run()
	return sub, nil
}

func (h *httpDocumentStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// parseIdentityFromJWT extracts the user id (sub) and display name (name)
// from an already-issued token without verifying the signature. The server
// signed it a moment ago; the client only needs the claims.
func parseIdentityFromJWT(tokenString string) (userID, userName string, err error) {
	claims := jwt.MapClaims{}
	if _, _, err = jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", "", err
	}

	userID, err = claims.GetSubject()
	if err != nil {
		return "", "", err
	}

	if name, ok := claims["name"].(string); ok {
		userName = name
	}

	return userID, userName, nil
}
