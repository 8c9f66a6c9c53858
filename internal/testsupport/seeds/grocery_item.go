package seeds

import (
	"context"
	"time"

	"github.com/google/uuid"

	"basket/internal/testsupport"
	"basket/pkg/errors"
)

// GroceryItem is a seeded row of the grocery_items table.
// A nil Store inserts SQL NULL.
type GroceryItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Quantity  int
	Store     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GroceryItemBuilder provides a fluent API for creating grocery item rows
type GroceryItemBuilder struct {
	db     DBTX
	ctx    context.Context
	entity *GroceryItem
}

// NewGroceryItemBuilder creates a new GroceryItemBuilder with sensible defaults
func NewGroceryItemBuilder(db DBTX, ctx context.Context) *GroceryItemBuilder {
	now := time.Now()
	store := testsupport.UniqueStore()
	return &GroceryItemBuilder{
		db:  db,
		ctx: ctx,
		entity: &GroceryItem{
			ID:        uuid.New(),
			Name:      testsupport.UniqueName("item"),
			Quantity:  1,
			Store:     &store,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets a specific ID
func (b *GroceryItemBuilder) WithID(id uuid.UUID) *GroceryItemBuilder {
	b.entity.ID = id
	return b
}

// WithUser sets the owning user
func (b *GroceryItemBuilder) WithUser(user *User) *GroceryItemBuilder {
	b.entity.UserID = user.ID
	return b
}

// WithUserID sets the owning user by ID
func (b *GroceryItemBuilder) WithUserID(id uuid.UUID) *GroceryItemBuilder {
	b.entity.UserID = id
	return b
}

// WithName sets the item name
func (b *GroceryItemBuilder) WithName(name string) *GroceryItemBuilder {
	b.entity.Name = name
	return b
}

// WithQuantity sets the quantity
func (b *GroceryItemBuilder) WithQuantity(quantity int) *GroceryItemBuilder {
	b.entity.Quantity = quantity
	return b
}

// WithStore sets the store name
func (b *GroceryItemBuilder) WithStore(store string) *GroceryItemBuilder {
	b.entity.Store = &store
	return b
}

// WithNullStore clears the store (inserts SQL NULL)
func (b *GroceryItemBuilder) WithNullStore() *GroceryItemBuilder {
	b.entity.Store = nil
	return b
}

// WithCreatedAt sets the creation timestamp
func (b *GroceryItemBuilder) WithCreatedAt(t time.Time) *GroceryItemBuilder {
	b.entity.CreatedAt = t
	return b
}

// WithUpdatedAt sets the update timestamp
func (b *GroceryItemBuilder) WithUpdatedAt(t time.Time) *GroceryItemBuilder {
	b.entity.UpdatedAt = t
	return b
}

// Build returns the built row without inserting it
func (b *GroceryItemBuilder) Build() *GroceryItem {
	return b.entity
}

// Insert writes the grocery item row
func (b *GroceryItemBuilder) Insert() (*GroceryItem, error) {
	if b.entity.UserID == uuid.Nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "grocery item needs an owning user")
	}

	query := `
		INSERT INTO grocery_items (id, user_id, name, quantity, store, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := b.db.ExecContext(b.ctx, query,
		b.entity.ID, b.entity.UserID, b.entity.Name, b.entity.Quantity,
		b.entity.Store, b.entity.CreatedAt, b.entity.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed grocery item %s", b.entity.Name)
	}

	return b.entity, nil
}
