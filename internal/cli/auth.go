package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyhub-id/studyhub/models"
)

func (a *App) newRegisterCmd() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account and start a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := a.newRemote().Register(cmd.Context(), creds)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			if err := a.saveSession(session); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered and logged in as %s\n", session.UserName)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Login, "login", "", "login (email address)")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password")
	cmd.Flags().StringVar(&creds.Name, "name", "", "display name shown on your notes")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) newLoginCmd() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := a.newRemote().Login(cmd.Context(), creds)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if err := a.saveSession(session); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", session.UserName)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Login, "login", "", "login (email address)")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.clearSession(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
