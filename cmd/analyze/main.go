// Command analyze builds a behavioral persona for one public profile.
// It fetches the subject's account metadata and recent activity, derives a
// statistical profile, generates the persona via Gemini (with model fallback),
// and writes the rendered result to a file.
//
// Flags:
//
//	-subject  profile URL or bare username (required)
//	-limit    number of posts/comments to analyze (default: from config)
//	-format   output format: text, html, json (default: text)
//	-out      output file path (default: persona_output.<ext>)
//	-archive  store the run in the PostgreSQL archive (requires archive config)
//
// Requires GEMINI_API_KEY to be set (or gemini.api_key in config.yaml).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/personalens/internal/adapter/postgres"
	"github.com/heartmarshall/personalens/internal/adapter/postgres/archive"
	"github.com/heartmarshall/personalens/internal/adapter/provider/gemini"
	"github.com/heartmarshall/personalens/internal/adapter/provider/reddit"
	"github.com/heartmarshall/personalens/internal/app"
	"github.com/heartmarshall/personalens/internal/config"
	"github.com/heartmarshall/personalens/internal/domain"
	"github.com/heartmarshall/personalens/internal/render"
	"github.com/heartmarshall/personalens/internal/service/analysis"
	"github.com/heartmarshall/personalens/internal/service/persona"
	"github.com/heartmarshall/personalens/internal/service/profile"
)

func main() {
	subjectFlag := flag.String("subject", "", "profile URL or bare username")
	limitFlag := flag.Int("limit", 0, "number of posts/comments to analyze (default: from config)")
	formatFlag := flag.String("format", "text", "output format: text, html, json")
	outFlag := flag.String("out", "", "output file path (default: persona_output.<ext>)")
	archiveFlag := flag.Bool("archive", false, "store the run in the PostgreSQL archive")
	flag.Parse()

	if *subjectFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: analyze -subject=<profile URL or username> [-limit=N] [-format=text|html|json] [-out=FILE] [-archive]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting analyze", slog.String("version", app.BuildVersion()))

	username, err := reddit.ExtractUsername(*subjectFlag)
	if err != nil {
		logger.Error("invalid subject", slog.String("error", err.Error()))
		os.Exit(1)
	}

	limit := *limitFlag
	if limit <= 0 {
		limit = cfg.Reddit.ActivityLimit
	}

	ctx := context.Background()

	source := reddit.NewClient(cfg.Reddit, reddit.NewIntervalPacer(cfg.Reddit.RequestPause), logger)

	llm, err := gemini.NewClient(ctx, cfg.Gemini, logger)
	if err != nil {
		logger.Error("create inference client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var personaArchive *archive.Repo
	if *archiveFlag {
		if !cfg.Archive.Enabled {
			logger.Error("archive requested but archive.enabled is false")
			os.Exit(1)
		}
		pool, err := postgres.NewPool(ctx, cfg.Archive)
		if err != nil {
			logger.Error("connect to archive database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		personaArchive = archive.New(pool)
	}

	profiles := profile.NewService(logger)
	personas := persona.NewService(logger, llm)

	svc := newAnalysis(logger, source, profiles, personas, personaArchive)

	result, err := svc.Run(ctx, username, limit)
	if err != nil {
		logger.Error("analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	output, ext, err := renderPersona(result, *formatFlag)
	if err != nil {
		logger.Error("render persona", slog.String("error", err.Error()))
		os.Exit(1)
	}

	outPath := *outFlag
	if outPath == "" {
		outPath = "persona_output." + ext
	}

	if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil {
		logger.Error("write output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("persona saved",
		slog.String("subject", username),
		slog.String("model", result.Model),
		slog.String("file", outPath),
	)
}

// newAnalysis wires the pipeline service, passing a nil archive when
// persistence is disabled. The indirection keeps the typed-nil pitfall out of
// the interface field.
func newAnalysis(logger *slog.Logger, source *reddit.Client, profiles *profile.Service, personas *persona.Service, personaArchive *archive.Repo) *analysis.Service {
	if personaArchive == nil {
		return analysis.NewService(logger, source, profiles, personas, nil)
	}
	return analysis.NewService(logger, source, profiles, personas, personaArchive)
}

// renderPersona renders in the requested format and returns the output plus
// the default file extension.
func renderPersona(p *domain.Persona, format string) (string, string, error) {
	switch format {
	case "text":
		return render.Text(p), "txt", nil
	case "html":
		out, err := render.HTML(p)
		return out, "html", err
	case "json":
		out, err := render.JSON(p)
		return out, "json", err
	default:
		return "", "", fmt.Errorf("unknown format %q (want text, html, or json)", format)
	}
}
