// Package analysis orchestrates the full pipeline for one subject:
// retrieval -> aggregation -> persona generation -> optional archival.
// The pipeline is strictly sequential; each stage consumes the complete
// output of its predecessor. It always completes with a fully-populated
// Persona: retrieval failures degrade to empty inputs and inference failures
// degrade to the default persona.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/personalens/internal/domain"
	"github.com/heartmarshall/personalens/pkg/ctxutil"
)

// activitySource is the out-of-scope retrieval layer: both lookups are
// independently fallible, and a failure in either yields an empty/default
// structure rather than aborting the pipeline.
type activitySource interface {
	FetchAccountMetadata(ctx context.Context, username string) (domain.AccountMetadata, error)
	FetchActivity(ctx context.Context, username string, limit int) ([]domain.ActivityRecord, error)
}

type profileAggregator interface {
	Aggregate(ctx context.Context, username string, meta domain.AccountMetadata, activity *domain.ActivityLog) *domain.StatisticalProfile
}

type personaGenerator interface {
	Generate(ctx context.Context, prof *domain.StatisticalProfile, activity *domain.ActivityLog) *domain.Persona
}

// personaArchive persists completed runs. Optional: a nil archive disables
// persistence entirely.
type personaArchive interface {
	Save(ctx context.Context, run *domain.PersonaRun) error
}

// Service runs the analysis pipeline.
type Service struct {
	log      *slog.Logger
	source   activitySource
	profiles profileAggregator
	personas personaGenerator
	archive  personaArchive // may be nil
	now      func() time.Time
}

// NewService creates the pipeline service. Pass a nil archive to run without
// persistence.
func NewService(log *slog.Logger, source activitySource, profiles profileAggregator, personas personaGenerator, archive personaArchive) *Service {
	return &Service{
		log:      log.With("service", "analysis"),
		source:   source,
		profiles: profiles,
		personas: personas,
		archive:  archive,
		now:      time.Now,
	}
}

// Run analyzes one subject and returns the resulting persona. The only error
// outcome is input validation; every downstream failure mode has a defined
// degraded output.
func (s *Service) Run(ctx context.Context, subject string, limit int) (*domain.Persona, error) {
	if subject == "" {
		return nil, domain.NewValidationError("subject", "must not be empty")
	}
	if limit <= 0 {
		limit = 100
	}

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	ctx = ctxutil.WithSubject(ctx, subject)

	s.log.InfoContext(ctx, "analysis started",
		slog.String("run_id", runID.String()),
		slog.String("subject", subject),
		slog.Int("limit", limit),
	)

	meta, err := s.source.FetchAccountMetadata(ctx, subject)
	if err != nil {
		s.log.WarnContext(ctx, "account metadata unavailable, continuing with empty metadata",
			slog.String("error", err.Error()))
		meta = domain.AccountMetadata{}
	}

	records, err := s.source.FetchActivity(ctx, subject, limit)
	if err != nil {
		s.log.WarnContext(ctx, "activity unavailable, continuing with empty activity",
			slog.String("error", err.Error()))
		records = nil
	}
	activity := domain.NewActivityLog(records)

	prof := s.profiles.Aggregate(ctx, subject, meta, activity)
	persona := s.personas.Generate(ctx, prof, activity)

	if s.archive != nil {
		run := &domain.PersonaRun{
			ID:        runID,
			Subject:   subject,
			Model:     persona.Model,
			Persona:   persona,
			CreatedAt: s.now(),
		}
		if err := s.archive.Save(ctx, run); err != nil {
			s.log.WarnContext(ctx, "failed to archive persona run", slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "analysis complete",
		slog.String("run_id", runID.String()),
		slog.Int("records", activity.Len()),
		slog.String("model", persona.Model),
	)

	return persona, nil
}
