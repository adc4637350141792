// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package assist

import (
	"fmt"
	"strings"
)

// SummaryLength controls how long a generated summary should be.
type SummaryLength string

const (
	LengthShort  SummaryLength = "short"
	LengthMedium SummaryLength = "medium"
	LengthLong   SummaryLength = "long"
)

// SummaryStyle controls the output format of a summary.
type SummaryStyle string

const (
	StyleBullet    SummaryStyle = "bullet"
	StyleParagraph SummaryStyle = "paragraph"
	StyleOutline   SummaryStyle = "outline"
)

// SummaryFocus controls what the summary emphasizes.
type SummaryFocus string

const (
	FocusKeyPoints  SummaryFocus = "key_points"
	FocusConcepts   SummaryFocus = "concepts"
	FocusActionable SummaryFocus = "actionable"
)

// Language selects the output language of generated text.
type Language string

const (
	LanguageIndonesian Language = "id"
	LanguageEnglish    Language = "en"
)

// Difficulty grades generated study questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Level grades concept explanations.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// SummarizeOptions tunes summary generation. Zero values fall back to
// medium-length bullet summaries of key points in Indonesian, matching
// the product defaults.
type SummarizeOptions struct {
	Length   SummaryLength
	Style    SummaryStyle
	Focus    SummaryFocus
	Language Language
}

func (o SummarizeOptions) withDefaults() SummarizeOptions {
	if o.Length == "" {
		o.Length = LengthMedium
	}
	if o.Style == "" {
		o.Style = StyleBullet
	}
	if o.Focus == "" {
		o.Focus = FocusKeyPoints
	}
	if o.Language == "" {
		o.Language = LanguageIndonesian
	}
	return o
}

var lengthSpecs = map[SummaryLength]string{
	LengthShort:  "3-5 main points in 150-200 words",
	LengthMedium: "5-8 main points in 300-400 words",
	LengthLong:   "8-12 main points in 500-600 words",
}

var styleFormats = map[SummaryStyle]string{
	StyleBullet:    "use bullet points with a • for each point",
	StyleParagraph: "use well-flowing paragraphs",
	StyleOutline:   "use an outline format with headings and sub-points",
}

var focusAreas = map[SummaryFocus]string{
	FocusKeyPoints:  "focus on key points and important concepts",
	FocusConcepts:   "focus on theoretical concepts and deep understanding",
	FocusActionable: "focus on practical steps and actionable insights",
}

var difficultySpecs = map[Difficulty]string{
	DifficultyEasy:   "basic questions for concept comprehension",
	DifficultyMedium: "questions that analyze and apply the concepts",
	DifficultyHard:   "high-level synthesis and evaluation questions",
}

var levelSpecs = map[Level]string{
	LevelBeginner:     "in simple language for beginners, using analogies and everyday examples",
	LevelIntermediate: "with enough detail for an intermediate level, including practical examples",
	LevelAdvanced:     "with in-depth analysis for an advanced level, including nuance and complexity",
}

func languageName(lang Language) string {
	if lang == LanguageEnglish {
		return "English"
	}
	return "Bahasa Indonesia"
}

func summarizePrompt(title, content string, opts SummarizeOptions) string {
	opts = opts.withDefaults()

	var b strings.Builder
	b.WriteString("Create a summary of the following study note:\n\n")
	if title != "" {
		fmt.Fprintf(&b, "**Title:** %s\n\n", title)
	}
	fmt.Fprintf(&b, "**Content:**\n%s\n\n", content)
	b.WriteString("**Summary instructions:**\n")
	fmt.Fprintf(&b, "- Length: %s\n", lengthSpecs[opts.Length])
	fmt.Fprintf(&b, "- Format: %s\n", styleFormats[opts.Style])
	fmt.Fprintf(&b, "- Focus: %s\n", focusAreas[opts.Focus])
	fmt.Fprintf(&b, "- Language: %s\n", languageName(opts.Language))
	b.WriteString("- Use clear, easy-to-understand language\n")
	b.WriteString("- Preserve important information and relevant details\n")
	b.WriteString("- If there are formulas, include them in the summary\n")
	b.WriteString("- Structure the summary logically so it is easy to follow\n\n")
	b.WriteString("Start the summary directly, without any preamble:\n")
	return b.String()
}

func studyQuestionsPrompt(title, content string, difficulty Difficulty) string {
	if difficulty == "" {
		difficulty = DifficultyMedium
	}

	var b strings.Builder
	b.WriteString("Create 5-7 study questions based on the following note:\n\n")
	if title != "" {
		fmt.Fprintf(&b, "**Title:** %s\n\n", title)
	}
	fmt.Fprintf(&b, "**Content:**\n%s\n\n", content)
	b.WriteString("**Instructions:**\n")
	fmt.Fprintf(&b, "- Difficulty level: %s\n", difficultySpecs[difficulty])
	b.WriteString("- Write questions that aid comprehension and review of the material\n")
	b.WriteString("- Vary the question types (definition, analysis, application, etc.)\n")
	b.WriteString("- Number each question and put it on its own line\n\n")
	b.WriteString("Questions:\n")
	return b.String()
}

func explainConceptPrompt(concept, noteContext string, level Level) string {
	if level == "" {
		level = LevelIntermediate
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Explain the concept %q %s.\n\n", concept, levelSpecs[level])
	if noteContext != "" {
		fmt.Fprintf(&b, "Context: %s\n\n", noteContext)
	}
	b.WriteString("**Explanation format:**\n")
	b.WriteString("1. A short, clear definition\n")
	b.WriteString("2. A detailed explanation with examples\n")
	b.WriteString("3. Practical applications or relevance\n")
	b.WriteString("4. Tips for understanding or remembering it\n\n")
	b.WriteString("Use language that is easy to understand:\n")
	return b.String()
}
