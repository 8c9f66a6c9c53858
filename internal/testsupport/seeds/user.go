package seeds

import (
	"context"
	"time"

	"github.com/google/uuid"

	"basket/internal/testsupport"
	"basket/pkg/errors"
)

// User is a seeded row of the users table
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserBuilder provides a fluent API for creating user rows
type UserBuilder struct {
	db     DBTX
	ctx    context.Context
	entity *User
}

// NewUserBuilder creates a new UserBuilder with sensible defaults
func NewUserBuilder(db DBTX, ctx context.Context) *UserBuilder {
	now := time.Now()
	return &UserBuilder{
		db:  db,
		ctx: ctx,
		entity: &User{
			ID:        uuid.New(),
			Email:     testsupport.UniqueEmail("shopper"),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets a specific ID
func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.entity.ID = id
	return b
}

// WithEmail sets the email address
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.entity.Email = email
	return b
}

// Build returns the built row without inserting it
func (b *UserBuilder) Build() *User {
	return b.entity
}

// Insert writes the user row. Re-inserting the same email updates the
// timestamp instead of failing, so seeds stay re-runnable.
func (b *UserBuilder) Insert() (*User, error) {
	query := `
		INSERT INTO users (id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id`

	row := b.db.QueryRowContext(b.ctx, query,
		b.entity.ID, b.entity.Email, b.entity.CreatedAt, b.entity.UpdatedAt,
	)
	if err := row.Scan(&b.entity.ID); err != nil {
		return nil, errors.Wrapf(err, "failed to seed user %s", b.entity.Email)
	}

	return b.entity, nil
}
