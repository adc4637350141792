// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyhub-id/studyhub/internal/codec"
	"github.com/studyhub-id/studyhub/internal/noteview"
	"github.com/studyhub-id/studyhub/models"
)

func (a *App) newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Work with your study notes",
	}

	cmd.AddCommand(
		a.newNotesListCmd(),
		a.newNotesCreateCmd(),
		a.newNotesEditCmd(),
		a.newNotesDeleteCmd(),
		a.newNotesFavoriteCmd(),
		a.newNotesShareCmd(),
		a.newNotesWatchCmd(),
	)

	return cmd
}

func (a *App) newNotesListCmd() *cobra.Command {
	var (
		filters models.NoteFilters
		sortKey string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your notes, optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, done, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			notes := store.Filtered(filters, models.SortKey(sortKey))
			printNotes(cmd, notes)
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.Category, "category", "", "keep only notes in this category")
	cmd.Flags().StringSliceVar(&filters.Tags, "tag", nil, "keep notes carrying at least one of these tags")
	cmd.Flags().BoolVar(&filters.FavoriteOnly, "favorites", false, "keep only favorite notes")
	cmd.Flags().StringVar(&filters.SearchQuery, "search", "", "full-text search across title, content, tags, category and author")
	cmd.Flags().StringVar(&sortKey, "sort", string(models.SortUpdatedDesc), "sort order: updated, created or title")

	return cmd
}

func (a *App) newNotesCreateCmd() *cobra.Command {
	var form models.NoteFormData

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, done, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			id, err := store.Create(cmd.Context(), form)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created note %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Title, "title", "", "note title")
	cmd.Flags().StringVar(&form.Content, "content", "", "note body")
	cmd.Flags().StringVar(&form.Category, "category", models.CategoryOther, "note category")
	cmd.Flags().StringSliceVar(&form.Tags, "tag", nil, "tags, repeatable")
	cmd.Flags().BoolVar(&form.IsPublic, "public", false, "mark the note as public")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func (a *App) newNotesEditCmd() *cobra.Command {
	var form models.NoteFormData

	cmd := &cobra.Command{
		Use:   "edit <note-id>",
		Short: "Update fields of an existing note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// only flags the caller actually set participate in the
			// merge-update; everything else keeps its stored value
			partial := map[string]any{}
			if cmd.Flags().Changed("title") {
				partial[models.FieldTitle] = form.Title
			}
			if cmd.Flags().Changed("content") {
				partial[models.FieldContent] = form.Content
			}
			if cmd.Flags().Changed("category") {
				partial[models.FieldCategory] = form.Category
			}
			if cmd.Flags().Changed("tag") {
				partial[models.FieldTags] = form.Tags
			}
			if cmd.Flags().Changed("public") {
				partial[models.FieldIsPublic] = form.IsPublic
			}

			if len(partial) == 0 {
				return fmt.Errorf("nothing to update: pass at least one of --title, --content, --category, --tag, --public")
			}

			store, done, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			if err := store.Update(cmd.Context(), args[0], partial); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated note %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Title, "title", "", "new title")
	cmd.Flags().StringVar(&form.Content, "content", "", "new body")
	cmd.Flags().StringVar(&form.Category, "category", "", "new category")
	cmd.Flags().StringSliceVar(&form.Tags, "tag", nil, "replacement tag list")
	cmd.Flags().BoolVar(&form.IsPublic, "public", false, "public visibility")

	return cmd
}

func (a *App) newNotesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, done, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted note %s\n", args[0])
			return nil
		},
	}
}

func (a *App) newNotesFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <note-id>",
		Short: "Toggle the favorite flag of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, done, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			if err := store.ToggleFavorite(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "toggled favorite on note %s\n", args[0])
			return nil
		},
	}
}

func (a *App) newNotesShareCmd() *cobra.Command {
	var userIDs []string

	cmd := &cobra.Command{
		Use:   "share <note-id>",
		Short: "Replace the list of users a note is shared with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, done, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			if err := store.Share(cmd.Context(), args[0], userIDs); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "note %s now shared with %d user(s)\n", args[0], len(userIDs))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&userIDs, "with", nil, "user ids to share with; empty revokes all shares")

	return cmd
}

func (a *App) newNotesWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream your notes and reprint the list on every change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := a.loadSession()
			if err != nil {
				return err
			}

			rc := a.newRemote()
			rc.SetToken(session.Token)

			sub, err := rc.Subscribe(cmd.Context(), session.UserID)
			if err != nil {
				return err
			}
			defer sub.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "watching for changes, press Ctrl+C to stop")

			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case err, ok := <-sub.Errs():
					if !ok {
						return nil
					}
					return fmt.Errorf("subscription failed: %w", err)
				case snapshot, ok := <-sub.Snapshots():
					if !ok {
						return nil
					}
					notes := codec.DecodeSnapshot(snapshot)
					noteview.Sort(notes, models.SortUpdatedDesc)
					fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %d note(s)\n", time.Now().Format(time.TimeOnly), len(notes))
					printNotes(cmd, notes)
				}
			}
		},
	}
}

func printNotes(cmd *cobra.Command, notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no notes")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tTAGS\tFAV\tUPDATED")
	for _, note := range notes {
		fav := ""
		if note.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			note.ID,
			note.Title,
			note.Category,
			strings.Join(note.Tags, ","),
			fav,
			note.UpdatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}
