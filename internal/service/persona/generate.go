package persona

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/personalens/internal/domain"
)

// Generate runs the qualitative stage for one subject: build the bounded
// request, delegate to the inference capability, parse the response. It
// never returns an error — exhaustion of the model fallback chain and every
// other inference failure degrade to the deterministic default persona, so
// downstream consumers always receive a fully-populated Persona.
func (s *Service) Generate(ctx context.Context, prof *domain.StatisticalProfile, activity *domain.ActivityLog) *domain.Persona {
	prompt := BuildPrompt(prof, activity)

	res, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, domain.ErrInferenceExhausted) {
			s.log.WarnContext(ctx, "all inference models exhausted, using default persona",
				slog.String("username", prof.Username))
		} else {
			s.log.WarnContext(ctx, "inference failed, using default persona",
				slog.String("username", prof.Username),
				slog.String("error", err.Error()))
		}
		return s.DefaultPersona(prof)
	}

	p := s.Parse(res.Text, prof)
	p.Model = res.Model

	s.log.InfoContext(ctx, "persona generated",
		slog.String("username", prof.Username),
		slog.String("model", res.Model),
		slog.Int("prompt_chars", len(prompt)),
	)

	return p
}
