package testsupport

import (
	"context"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"

	"basket/internal/adapters/postgres"
)

// PostgresTestHelper manages a transactional connection for integration tests.
// Each helper runs inside its own throwaway schema so tests see exactly the
// rows they seed, and everything disappears on rollback.
type PostgresTestHelper struct {
	client     *postgres.Client
	tx         *sqlx.Tx
	rolledBack bool
}

// NewPostgresTestHelper opens a connection and begins a transaction that is always rolled back.
func NewPostgresTestHelper(t *testing.T, dsn string) *PostgresTestHelper {
	t.Helper()

	client, err := postgres.Open(dsn)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	tx, err := client.DB().BeginTxx(context.Background(), nil)
	if err != nil {
		_ = client.Close()
		t.Fatalf("failed to start transaction: %v", err)
	}

	helper := &PostgresTestHelper{client: client, tx: tx}
	t.Cleanup(helper.Rollback)
	t.Cleanup(func() {
		_ = client.Close()
	})

	helper.createSchema(t)

	return helper
}

// NewTestPostgres creates a helper using TEST_DATABASE_URL (or DATABASE_URL).
// Tests are skipped when neither is set.
func NewTestPostgres(t *testing.T) *PostgresTestHelper {
	t.Helper()

	return NewPostgresTestHelper(t, DatabaseURLFromEnv(t))
}

// Tx returns the active transaction for the test.
func (h *PostgresTestHelper) Tx() *sqlx.Tx {
	return h.tx
}

// DB returns the underlying database handle.
func (h *PostgresTestHelper) DB() *sqlx.DB {
	return h.client.DB()
}

// Rollback rolls back the transaction once.
func (h *PostgresTestHelper) Rollback() {
	if h.rolledBack {
		return
	}
	_ = h.tx.Rollback()
	h.rolledBack = true
}

// Close is an alias for Rollback for backward compatibility
func (h *PostgresTestHelper) Close() {
	h.Rollback()
}

// createSchema builds the grocery tables in a schema private to this
// transaction. SET LOCAL scopes the search path to the transaction, so the
// schema and its tables vanish with the rollback.
func (h *PostgresTestHelper) createSchema(t *testing.T) {
	t.Helper()

	name := fmt.Sprintf("basket_test_%d", NextSequence())

	stmts := []string{
		fmt.Sprintf("CREATE SCHEMA %s", name),
		fmt.Sprintf("SET LOCAL search_path TO %s", name),
		`CREATE TABLE users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE grocery_items (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (id),
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 1,
			store TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := h.tx.Exec(stmt); err != nil {
			h.Rollback()
			t.Fatalf("failed to prepare test schema: %v", err)
		}
	}
}
