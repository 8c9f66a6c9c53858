package test

import (
	"context"

	"basket/internal/testsupport/seeds"
)

// SeedBasics creates a minimal data set for manual smoke tests:
// two shoppers, one shared item, and one user with an empty list.
func SeedBasics(ctx context.Context, s *seeds.Seeder) error {
	busy, err := s.User().WithEmail("busy@test.local").Insert()
	if err != nil {
		return err
	}
	if _, err := s.User().WithEmail("idle@test.local").Insert(); err != nil {
		return err
	}

	names := []string{"Milk", "Milk", "Bread"}
	for _, name := range names {
		_, err := s.GroceryItem().
			WithUser(busy).
			WithName(name).
			WithQuantity(2).
			WithStore("Corner Shop").
			Insert()
		if err != nil {
			return err
		}
	}

	return nil
}
