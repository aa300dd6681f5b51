// Package archive implements the persona-run archive repository using
// PostgreSQL. Personas are stored as JSONB alongside queryable run metadata.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/personalens/internal/adapter/postgres"
	"github.com/heartmarshall/personalens/internal/domain"
)

const defaultListLimit = 50

// builder is the shared statement builder with PostgreSQL placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides persona-run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new archive repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Save inserts a completed run. The persona is marshaled into the JSONB
// persona column.
func (r *Repo) Save(ctx context.Context, run *domain.PersonaRun) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	personaJSON, err := json.Marshal(run.Persona)
	if err != nil {
		return fmt.Errorf("persona_run %s: marshal persona: %w", run.ID, err)
	}

	sql, args, err := builder.
		Insert("persona_runs").
		Columns("id", "subject", "model", "persona", "created_at").
		Values(run.ID, run.Subject, run.Model, personaJSON, run.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("persona_run %s: build insert: %w", run.ID, err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "persona_run", run.ID)
	}

	return nil
}

// GetByID returns one archived run. Returns domain.ErrNotFound if no run with
// the given ID exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PersonaRun, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("id", "subject", "model", "persona", "created_at").
		From("persona_runs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("persona_run %s: build select: %w", id, err)
	}

	run, err := scanRun(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "persona_run", id)
	}

	return run, nil
}

// List returns archived runs matching the filter, newest first. Zero-value
// filter fields are ignored; an unset limit defaults to 50.
func (r *Repo) List(ctx context.Context, filter domain.PersonaRunFilter) ([]*domain.PersonaRun, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := builder.
		Select("id", "subject", "model", "persona", "created_at").
		From("persona_runs").
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	if filter.Subject != "" {
		query = query.Where(squirrel.Eq{"subject": filter.Subject})
	}
	if !filter.CreatedAfter.IsZero() {
		query = query.Where(squirrel.Gt{"created_at": filter.CreatedAfter})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list persona_runs: build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list persona_runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.PersonaRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list persona_runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persona_runs: %w", err)
	}

	return runs, nil
}

// DeleteOlderThan removes runs created before the cutoff and returns the
// number of deleted rows.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Delete("persona_runs").
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("prune persona_runs: build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("prune persona_runs: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for scanRun.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRun maps one persona_runs row into a domain.PersonaRun.
func scanRun(row rowScanner) (*domain.PersonaRun, error) {
	var (
		run         domain.PersonaRun
		personaJSON []byte
	)

	if err := row.Scan(&run.ID, &run.Subject, &run.Model, &personaJSON, &run.CreatedAt); err != nil {
		return nil, err
	}

	if len(personaJSON) > 0 {
		var persona domain.Persona
		if err := json.Unmarshal(personaJSON, &persona); err != nil {
			return nil, fmt.Errorf("unmarshal persona: %w", err)
		}
		run.Persona = &persona
	}

	return &run, nil
}
