// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

// Package cli implements the studyhub command line client. It talks to the
// server through the remote document store contract, keeps a persisted
// session between invocations, and exposes the AI assist operations.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyhub-id/studyhub/internal/config"
	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/internal/notestore"
	"github.com/studyhub-id/studyhub/internal/remote"
)

// remoteClient is what the CLI needs from the transport: authentication,
// document writes, the realtime subscription and token installation.
type remoteClient interface {
	remote.AuthClient
	remote.DocumentStore
	SetToken(token string)
}

// App wires configuration and logging into the command tree.
type App struct {
	cfg    *config.ClientConfig
	logger *logger.Logger

	buildVersion string
	buildDate    string
	buildCommit  string

	// newRemote is swappable in tests
	newRemote func() remoteClient
}

// SetBuildInfo installs the ldflags-stamped build metadata shown by the
// version command. Empty values render as "N/A".
func (a *App) SetBuildInfo(version, date, commit string) {
	a.buildVersion = orNA(version)
	a.buildDate = orNA(date)
	a.buildCommit = orNA(commit)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// NewApp builds the CLI application around the given client configuration.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) *App {
	app := &App{
		cfg:    cfg,
		logger: log,
	}
	app.newRemote = func() remoteClient {
		return remote.NewHTTPDocumentStore(remote.HTTPClientConfig{
			BaseURL: cfg.ServerURL,
			Timeout: cfg.RequestTimeout,
		})
	}
	return app
}

// Execute runs the root command against os.Args.
func (a *App) Execute(ctx context.Context) error {
	return a.newRootCmd().ExecuteContext(ctx)
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "studyhub",
		Short:         "StudyHub is a note-taking client with realtime sync and AI assistance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.newRegisterCmd(),
		a.newLoginCmd(),
		a.newLogoutCmd(),
		a.newNotesCmd(),
		a.newAssistCmd(),
		a.newVersionCmd(),
	)

	return root
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\n", a.buildVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", a.buildDate)
			fmt.Fprintf(cmd.OutOrStdout(), "Build commit: %s\n", a.buildCommit)
		},
	}
}

// openStore starts a note store session from the persisted session file and
// waits until the realtime subscription delivers its first snapshot. The
// returned cleanup must be called to tear the subscription down.
func (a *App) openStore(ctx context.Context) (*notestore.Store, func(), error) {
	session, err := a.loadSession()
	if err != nil {
		return nil, nil, err
	}

	rc := a.newRemote()
	rc.SetToken(session.Token)

	store := notestore.New(rc, a.logger)
	if err := store.OnSessionStart(ctx, session); err != nil {
		return nil, nil, err
	}

	if err := waitLive(ctx, store); err != nil {
		store.OnSessionEnd()
		return nil, nil, err
	}

	return store, store.OnSessionEnd, nil
}

// waitLive blocks until the store has applied its first snapshot. Mutations
// like favorite toggling read the cached collection, so acting before the
// snapshot arrives would operate on stale emptiness.
func waitLive(ctx context.Context, store *notestore.Store) error {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	deadline := time.Now().Add(15 * time.Second)
	for {
		switch store.State() {
		case notestore.StateLive:
			return nil
		case notestore.StateErrored:
			return store.Err()
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("timed out waiting for the first notes snapshot")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
