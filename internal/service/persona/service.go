// Package persona implements the qualitative half of the pipeline: building
// the bounded inference request, delegating to the external text-generation
// capability, and parsing its free-form response into a strict Persona with
// deterministic fallback on any failure.
package persona

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/personalens/internal/provider"
)

// textGenerator is the external text-generation capability. Implementations
// try an ordered list of models and report exhaustion via an error wrapping
// domain.ErrInferenceExhausted.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (provider.InferenceResult, error)
}

// Service generates personas from statistical profiles and activity logs.
type Service struct {
	log *slog.Logger
	llm textGenerator
	now func() time.Time // injectable for deterministic timestamps in tests
}

// NewService creates a new persona service.
func NewService(log *slog.Logger, llm textGenerator) *Service {
	return &Service{
		log: log.With("service", "persona"),
		llm: llm,
		now: time.Now,
	}
}
