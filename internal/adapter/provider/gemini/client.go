// Package gemini implements the inference gateway over Google's Gemini API.
// It tries an ordered list of model identifiers (most capable first) and
// accepts the first one that answers without error.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/heartmarshall/personalens/internal/config"
	"github.com/heartmarshall/personalens/internal/domain"
	"github.com/heartmarshall/personalens/internal/provider"
)

// Client calls the Gemini text-generation API with model fallback.
// Each model is tried at most once per Generate call; retry/backoff, if any,
// is the caller's responsibility. No timeout is imposed here — bound the
// context at the call site.
type Client struct {
	models []string
	log    *slog.Logger

	// generate performs one model call; replaceable in tests.
	generate func(ctx context.Context, model, prompt string) (string, error)
}

// NewClient creates a Client from config. The API key must already be
// validated; an empty key fails here as a safety net.
func NewClient(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	api, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	c := &Client{
		models: cfg.Models,
		log:    logger.With("adapter", "gemini"),
	}
	c.generate = func(ctx context.Context, model, prompt string) (string, error) {
		result, err := api.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		if result == nil || len(result.Candidates) == 0 ||
			result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("empty response")
		}
		return result.Candidates[0].Content.Parts[0].Text, nil
	}

	return c, nil
}

// Generate sends the prompt to each configured model in priority order and
// returns the first successful response together with the model that
// produced it. When every model fails, the returned error wraps
// domain.ErrInferenceExhausted and carries the last per-model error.
func (c *Client) Generate(ctx context.Context, prompt string) (provider.InferenceResult, error) {
	var lastErr error

	for _, model := range c.models {
		text, err := c.generate(ctx, model, prompt)
		if err != nil {
			c.log.WarnContext(ctx, "model attempt failed",
				slog.String("model", model),
				slog.String("error", err.Error()),
			)
			lastErr = err
			continue
		}

		c.log.InfoContext(ctx, "model responded", slog.String("model", model))
		return provider.InferenceResult{Text: text, Model: model}, nil
	}

	return provider.InferenceResult{}, fmt.Errorf("gemini: all models failed (last: %v): %w", lastErr, domain.ErrInferenceExhausted)
}
