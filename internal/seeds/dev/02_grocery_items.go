package dev

import (
	"context"

	"basket/internal/testsupport/seeds"
)

// devItem is one sample grocery list entry
type devItem struct {
	email    string
	name     string
	quantity int
	store    string
}

// SeedGroceryItems fills the development shopping lists. Items repeat
// across users so the frequency and store aggregates have a visible shape;
// a few rows carry no store to exercise the distribution filter.
func SeedGroceryItems(ctx context.Context, s *seeds.Seeder) error {
	items := []devItem{
		{"alice@example.com", "Milk", 2, "Whole Foods"},
		{"alice@example.com", "Eggs", 12, "Whole Foods"},
		{"alice@example.com", "Bread", 1, "Trader Joe's"},
		{"alice@example.com", "Bananas", 6, "Trader Joe's"},
		{"alice@example.com", "Coffee", 1, ""},
		{"bob@example.com", "Milk", 1, "Safeway"},
		{"bob@example.com", "Bread", 2, "Safeway"},
		{"bob@example.com", "Chicken", 1, "Costco"},
		{"bob@example.com", "Rice", 1, "Costco"},
		{"bob@example.com", "Bananas", 4, "Safeway"},
		{"carol@example.com", "Milk", 3, "Whole Foods"},
		{"carol@example.com", "Eggs", 6, "Whole Foods"},
		{"carol@example.com", "Yogurt", 4, "Trader Joe's"},
		{"carol@example.com", "Apples", 8, "Trader Joe's"},
		{"carol@example.com", "Bread", 1, ""},
		{"dave@example.com", "Milk", 2, "Costco"},
		{"dave@example.com", "Chicken", 2, "Costco"},
		{"dave@example.com", "Rice", 2, "Costco"},
		{"dave@example.com", "Coffee", 2, "Whole Foods"},
		{"dave@example.com", "Bananas", 5, "Safeway"},
	}

	for _, item := range items {
		user, err := s.User().WithEmail(item.email).Insert()
		if err != nil {
			return err
		}

		builder := s.GroceryItem().
			WithUser(user).
			WithName(item.name).
			WithQuantity(item.quantity)

		if item.store != "" {
			builder = builder.WithStore(item.store)
		} else {
			builder = builder.WithNullStore()
		}

		if _, err := builder.Insert(); err != nil {
			return err
		}
	}

	return nil
}
