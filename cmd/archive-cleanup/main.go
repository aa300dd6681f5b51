// Command archive-cleanup removes archived persona runs older than the
// configured retention period. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/personalens/internal/adapter/postgres"
	"github.com/heartmarshall/personalens/internal/adapter/postgres/archive"
	"github.com/heartmarshall/personalens/internal/app"
	"github.com/heartmarshall/personalens/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Archive.Enabled {
		logger.Error("archive.enabled is false, nothing to clean up")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Archive)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := archive.New(pool)

	cutoff := time.Now().AddDate(0, 0, -cfg.Archive.RetentionDays)

	deleted, err := repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("prune failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("prune completed",
		slog.Int("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
