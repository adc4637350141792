package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyhub-id/studyhub/internal/assist"
	"github.com/studyhub-id/studyhub/internal/notestore"
	"github.com/studyhub-id/studyhub/models"
)

func (a *App) newAssistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assist",
		Short: "AI assistance for your notes (requires a Gemini API key)",
	}

	cmd.AddCommand(
		a.newAssistSummarizeCmd(),
		a.newAssistQuestionsCmd(),
		a.newAssistExplainCmd(),
	)

	return cmd
}

func (a *App) newGateway(cmd *cobra.Command) (*assist.Gateway, error) {
	return assist.NewGateway(cmd.Context(), assist.Config{
		APIKey: a.cfg.GeminiAPIKey,
		Model:  a.cfg.AssistModel,
	}, a.logger)
}

// noteByID opens a live store session and resolves one note from it.
func (a *App) noteByID(cmd *cobra.Command, id string) (models.Note, *notestore.Store, func(), error) {
	store, done, err := a.openStore(cmd.Context())
	if err != nil {
		return models.Note{}, nil, nil, err
	}

	note, ok := store.GetByID(id)
	if !ok {
		done()
		return models.Note{}, nil, nil, fmt.Errorf("note %s not found", id)
	}

	return note, store, done, nil
}

func (a *App) newAssistSummarizeCmd() *cobra.Command {
	var (
		opts assist.SummarizeOptions
		save bool
	)
	var length, style, focus, language string

	cmd := &cobra.Command{
		Use:   "summarize <note-id>",
		Short: "Generate a summary of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, err := a.newGateway(cmd)
			if err != nil {
				return err
			}

			note, store, done, err := a.noteByID(cmd, args[0])
			if err != nil {
				return err
			}
			defer done()

			opts.Length = assist.SummaryLength(length)
			opts.Style = assist.SummaryStyle(style)
			opts.Focus = assist.SummaryFocus(focus)
			opts.Language = assist.Language(language)

			summary, err := gateway.Summarize(cmd.Context(), note.Title, note.Content, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), summary)

			if save {
				if err := store.SetSummary(cmd.Context(), note.ID, summary); err != nil {
					return fmt.Errorf("summary generated but not saved: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nsummary saved to note %s\n", note.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&length, "length", "", "summary length: short, medium or long")
	cmd.Flags().StringVar(&style, "style", "", "summary style: bullet, paragraph or outline")
	cmd.Flags().StringVar(&focus, "focus", "", "summary focus: key_points, concepts or actionable")
	cmd.Flags().StringVar(&language, "language", "", "output language: id or en")
	cmd.Flags().BoolVar(&save, "save", false, "store the summary on the note")

	return cmd
}

func (a *App) newAssistQuestionsCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "questions <note-id>",
		Short: "Generate study questions from a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, err := a.newGateway(cmd)
			if err != nil {
				return err
			}

			note, _, done, err := a.noteByID(cmd, args[0])
			if err != nil {
				return err
			}
			defer done()

			questions, err := gateway.StudyQuestions(cmd.Context(), note.Title, note.Content, assist.Difficulty(difficulty))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), questions)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", string(assist.DifficultyMedium), "question difficulty: easy, medium or hard")

	return cmd
}

func (a *App) newAssistExplainCmd() *cobra.Command {
	var (
		noteID string
		level  string
	)

	cmd := &cobra.Command{
		Use:   "explain <concept>",
		Short: "Explain a concept, optionally grounded in one of your notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, err := a.newGateway(cmd)
			if err != nil {
				return err
			}

			var noteContext string
			if noteID != "" {
				note, _, done, err := a.noteByID(cmd, noteID)
				if err != nil {
					return err
				}
				done()
				noteContext = note.Content
			}

			explanation, err := gateway.ExplainConcept(cmd.Context(), args[0], noteContext, assist.Level(level))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), explanation)
			return nil
		},
	}

	cmd.Flags().StringVar(&noteID, "note", "", "note id whose content grounds the explanation")
	cmd.Flags().StringVar(&level, "level", string(assist.LevelIntermediate), "explanation level: beginner, intermediate or advanced")

	return cmd
}
