package genai

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

// ErrNoAPIKey is returned by NewGeminiClient when no API key is configured.
var ErrNoAPIKey = errors.New("no API key configured")

// ErrNoUsableModel is returned when none of the candidate models answered
// the startup ping.
var ErrNoUsableModel = errors.New("no usable generative model found")

const (
	probeAttempts = 2
	probeDelay    = 500 * time.Millisecond
	probeTimeout  = 10 * time.Second
)

// GeminiClient talks to the Generative Language API. Model selection happens
// once, in NewGeminiClient: candidates are probed in order with a one-token
// ping and the first responder is kept for the lifetime of the client.
type GeminiClient struct {
	svc   *generativelanguage.Service
	model string
}

// NewGeminiClient builds a client and probes the candidate model list.
// It returns an error when the key is missing or no candidate responds;
// callers are expected to run without a generator in that case.
func NewGeminiClient(ctx context.Context, apiKey string, models []string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	client := &GeminiClient{svc: svc}
	for _, candidate := range models {
		if err := client.probe(ctx, candidate); err != nil {
			slog.Warn("generative model probe failed",
				"model", candidate,
				"error", err)
			continue
		}

		client.model = candidate
		slog.Info("generative model selected", "model", candidate)
		return client, nil
	}

	return nil, ErrNoUsableModel
}

// ModelName returns the probed model identifier.
func (c *GeminiClient) ModelName() string {
	return c.model
}

// Generate implements Generator.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &generativelanguage.GenerationConfig{
			Temperature:     opts.Temperature,
			TopP:            opts.TopP,
			TopK:            opts.TopK,
			MaxOutputTokens: opts.MaxOutputTokens,
		},
	}

	resp, err := c.svc.Models.GenerateContent(c.model, req).Context(ctx).Do()
	if err != nil {
		return "", &GenerationError{Reason: "request to " + c.model, Err: err}
	}

	text := extractText(resp)
	if text == "" {
		return "", &GenerationError{Reason: "empty response from " + c.model}
	}

	return text, nil
}

// probe sends a one-token ping to a candidate model. Transient failures are
// retried a couple of times before the candidate is skipped.
func (c *GeminiClient) probe(ctx context.Context, model string) error {
	return retry.Do(
		func() error {
			pctx, cancel := context.WithTimeout(ctx, probeTimeout)
			defer cancel()

			req := &generativelanguage.GenerateContentRequest{
				Contents: []*generativelanguage.Content{
					{
						Role:  "user",
						Parts: []*generativelanguage.Part{{Text: "Say 'ready' in one word"}},
					},
				},
				GenerationConfig: &generativelanguage.GenerationConfig{
					MaxOutputTokens: 10,
				},
			}

			_, err := c.svc.Models.GenerateContent(model, req).Context(pctx).Do()
			return err
		},
		retry.Attempts(probeAttempts),
		retry.Delay(probeDelay),
		retry.LastErrorOnly(true),
	)
}

func extractText(resp *generativelanguage.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String())
}
