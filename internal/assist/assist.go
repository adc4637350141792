// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

// Package assist generates study aids from note content with the Gemini
// API: summaries, practice questions, and concept explanations. The
// gateway is purely generative; persisting a summary back onto a note is
// the caller's job.
package assist

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/studyhub-id/studyhub/internal/logger"
)

// Assistant produces AI study aids from note content.
type Assistant interface {
	// Summarize condenses note content according to the options.
	Summarize(ctx context.Context, title, content string, opts SummarizeOptions) (string, error)
	// StudyQuestions produces 5-7 practice questions over the content.
	StudyQuestions(ctx context.Context, title, content string, difficulty Difficulty) (string, error)
	// ExplainConcept explains a single concept at the requested level,
	// optionally grounded in surrounding note context.
	ExplainConcept(ctx context.Context, concept, noteContext string, level Level) (string, error)
}

// contentGenerator is the narrow slice of the genai client the gateway
// needs; tests substitute a fake.
type contentGenerator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// Gateway is the Gemini-backed Assistant.
type Gateway struct {
	generator contentGenerator
	logger    *logger.Logger
}

// Config carries Gemini connection settings.
type Config struct {
	APIKey string
	Model  string
}

// NewGateway connects to the Gemini API. Fails when no API key is
// configured; callers should treat that as "assist features disabled"
// rather than a fatal startup error.
func NewGateway(ctx context.Context, cfg Config, log *logger.Logger) (*Gateway, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if log == nil {
		log = logger.Nop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return &Gateway{
		generator: &geminiGenerator{client: client, model: cfg.Model},
		logger:    log,
	}, nil
}

// Summarize implements Assistant.
func (g *Gateway) Summarize(ctx context.Context, title, content string, opts SummarizeOptions) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	return g.run(ctx, "Gateway.Summarize", summarizePrompt(title, content, opts))
}

// StudyQuestions implements Assistant.
func (g *Gateway) StudyQuestions(ctx context.Context, title, content string, difficulty Difficulty) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	return g.run(ctx, "Gateway.StudyQuestions", studyQuestionsPrompt(title, content, difficulty))
}

// ExplainConcept implements Assistant.
func (g *Gateway) ExplainConcept(ctx context.Context, concept, noteContext string, level Level) (string, error) {
	if strings.TrimSpace(concept) == "" {
		return "", ErrEmptyContent
	}

	return g.run(ctx, "Gateway.ExplainConcept", explainConceptPrompt(concept, noteContext, level))
}

func (g *Gateway) run(ctx context.Context, op, prompt string) (string, error) {
	text, err := g.generator.generate(ctx, prompt)
	if err != nil {
		g.logger.Err(err).
			Str("func", op).
			Msg("content generation failed")
		return "", fmt.Errorf("%w: %s", ErrGenerationFailed, op)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty model response", ErrGenerationFailed)
	}
	return text, nil
}
