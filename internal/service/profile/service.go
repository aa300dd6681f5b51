// Package profile implements the statistical profile aggregator: it reduces
// raw account metadata plus an activity log into a fully-populated
// StatisticalProfile. Aggregation is pure computation with no error outcomes;
// missing inputs degrade to zeroed/empty fields.
package profile

import (
	"log/slog"
	"time"
)

// Service aggregates account metadata and activity into a profile.
type Service struct {
	log *slog.Logger
	now func() time.Time // injectable for deterministic account-age tests
}

// NewService creates a new profile aggregation service.
func NewService(log *slog.Logger) *Service {
	return &Service{
		log: log.With("service", "profile"),
		now: time.Now,
	}
}
