package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
//
// A missing Gemini API key is the one precondition that aborts the whole
// program before the pipeline starts; everything downstream degrades
// gracefully instead of failing.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return fmt.Errorf("gemini.api_key is required (set GEMINI_API_KEY)")
	}

	models, err := ParseModels(c.Gemini.ModelsRaw)
	if err != nil {
		return fmt.Errorf("gemini.models: %w", err)
	}
	c.Gemini.Models = models

	if c.Reddit.ActivityLimit <= 0 {
		return fmt.Errorf("reddit.activity_limit must be > 0 (got %d)", c.Reddit.ActivityLimit)
	}
	if c.Reddit.RequestPause < 0 {
		return fmt.Errorf("reddit.request_pause must be >= 0 (got %v)", c.Reddit.RequestPause)
	}

	if c.Archive.Enabled && c.Archive.DSN == "" {
		return fmt.Errorf("archive.dsn is required when archive.enabled is true")
	}
	if c.Archive.RetentionDays <= 0 {
		return fmt.Errorf("archive.retention_days must be > 0 (got %d)", c.Archive.RetentionDays)
	}

	return nil
}

// ParseModels parses a comma-separated list of model identifiers
// (e.g. "gemini-1.5-pro,gemini-1.5-flash") preserving priority order.
// At least one identifier is required.
func ParseModels(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	models := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		models = append(models, p)
	}

	if len(models) == 0 {
		return nil, fmt.Errorf("at least one model identifier is required")
	}

	return models, nil
}
