package genai

import (
	"context"
	"fmt"
)

// Generator is the capability interface for the external narrative
// generator. Implementations return a *GenerationError for every failure
// mode (auth, quota, timeout, malformed response); callers treat any error
// as "unavailable" and fall back to templated text.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// GenerateOptions tunes a single generation call. Zero values mean the
// backend's own defaults.
type GenerateOptions struct {
	Temperature     float64
	TopP            float64
	TopK            int64
	MaxOutputTokens int64
}

// DefaultOptions returns the generation settings used for conversational
// replies.
func DefaultOptions() GenerateOptions {
	return GenerateOptions{
		Temperature:     0.7,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 1024,
	}
}

// GenerationError wraps any failure of the narrative generator.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Err)
	}
	return "generation failed: " + e.Reason
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
