package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/studyhub-id/studyhub/models"
)

// ErrNotLoggedIn is returned by commands that need a persisted session when
// no valid session file exists.
var ErrNotLoggedIn = errors.New("not logged in: run `studyhub login` first")

// sessionPath resolves the session file location: the configured path if set,
// otherwise ~/.studyhub/session.json.
func (a *App) sessionPath() (string, error) {
	if a.cfg.SessionFile != "" {
		return a.cfg.SessionFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".studyhub", "session.json"), nil
}

func (a *App) loadSession() (models.Session, error) {
	path, err := a.sessionPath()
	if err != nil {
		return models.Session{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, fmt.Errorf("reading session file: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("decoding session file: %w", err)
	}
	if !session.Valid() {
		return models.Session{}, ErrNotLoggedIn
	}

	return session, nil
}

// saveSession persists the session with owner-only permissions; the file
// carries a bearer token.
func (a *App) saveSession(session models.Session) error {
	path, err := a.sessionPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

func (a *App) clearSession() error {
	path, err := a.sessionPath()
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
