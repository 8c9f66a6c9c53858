package seeds

import (
	"context"
	"database/sql"
)

// DBTX is the interface that both *sqlx.DB and *sqlx.Tx satisfy
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Seeder is the central orchestrator for creating seed data
// It provides a fluent API to build shopping scenarios
type Seeder struct {
	db  DBTX
	ctx context.Context
}

// New creates a new Seeder instance
func New(db DBTX) *Seeder {
	return &Seeder{
		db:  db,
		ctx: context.Background(),
	}
}

// WithContext sets the context for database operations
func (s *Seeder) WithContext(ctx context.Context) *Seeder {
	s.ctx = ctx
	return s
}

// User starts building a User row
func (s *Seeder) User() *UserBuilder {
	return NewUserBuilder(s.db, s.ctx)
}

// GroceryItem starts building a GroceryItem row
func (s *Seeder) GroceryItem() *GroceryItemBuilder {
	return NewGroceryItemBuilder(s.db, s.ctx)
}
