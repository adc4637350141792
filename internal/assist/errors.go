package assist

import "errors"

var (
	// ErrNotConfigured means no Gemini API key is set; assist features
	// are unavailable but the rest of the application works normally.
	ErrNotConfigured = errors.New("AI assistance is not configured, set a Gemini API key")

	// ErrEmptyContent means there is nothing to work with.
	ErrEmptyContent = errors.New("note content is empty")

	// ErrGenerationFailed wraps any model-side failure. The raw cause is
	// logged, not surfaced.
	ErrGenerationFailed = errors.New("failed to generate a response, please try again")
)
