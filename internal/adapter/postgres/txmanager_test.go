package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/personalens/internal/adapter/postgres"
	"github.com/heartmarshall/personalens/internal/adapter/postgres/testhelper"
)

// runExists checks whether a persona_runs row with the given ID exists.
func runExists(t *testing.T, pool *pgxpool.Pool, runID uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM persona_runs WHERE id = $1)`,
		runID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("runExists query: %v", err)
	}
	return exists
}

func insertRun(ctx context.Context, q postgres.Querier, runID uuid.UUID, subject string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO persona_runs (id, subject, model, persona, created_at)
		 VALUES ($1, $2, $3, $4, now())`,
		runID, subject, "gemini-1.5-pro", []byte(`{"name":"tx test"}`),
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	runID := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertRun(ctx, postgres.QuerierFromCtx(ctx, pool), runID, "commit-test")
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !runExists(t, pool, runID) {
		t.Fatal("expected run to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	runID := uuid.New()
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if execErr := insertRun(ctx, postgres.QuerierFromCtx(ctx, pool), runID, "rollback-test"); execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if runExists(t, pool, runID) {
		t.Fatal("expected run NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	runID := uuid.New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		// Verify data was rolled back.
		if runExists(t, pool, runID) {
			t.Fatal("expected run NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertRun(ctx, postgres.QuerierFromCtx(ctx, pool), runID, "panic-test"); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	runID := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if err := insertRun(ctx, q, runID, "ctx-test"); err != nil {
			return err
		}

		// Should be visible within the transaction.
		var exists bool
		err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM persona_runs WHERE id = $1)`, runID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected run to be visible within the transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	// After commit, also visible outside.
	if !runExists(t, pool, runID) {
		t.Fatal("expected run to exist after committed transaction")
	}
}
