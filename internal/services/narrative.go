package services

import (
	"context"
	"log/slog"
	"time"

	"finance-coach/internal/genai"
)

// generateNarrative asks the generator for advisory text under a deadline.
// It returns false whenever no usable text came back, which callers treat as
// the signal to fall back to a deterministic template. A nil generator means
// no credentials were configured at startup.
func generateNarrative(ctx context.Context, gen genai.Generator, timeout time.Duration, metrics MetricsRecorderInterface, operation, prompt string) (string, bool) {
	if gen == nil {
		return "", false
	}

	gctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	text, err := gen.Generate(gctx, prompt, genai.DefaultOptions())
	duration := time.Since(start)

	if err != nil || text == "" {
		slog.Warn("narrative generation failed, using fallback",
			"operation", operation,
			"duration", duration,
			"error", err)
		if metrics != nil {
			metrics.RecordGeneration("fallback", duration)
		}
		return "", false
	}

	if metrics != nil {
		metrics.RecordGeneration("success", duration)
	}
	return text, true
}
