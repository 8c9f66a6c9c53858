package dev

import (
	"context"

	"basket/internal/testsupport/seeds"
)

// SeedUsers creates the development shopper accounts
func SeedUsers(ctx context.Context, s *seeds.Seeder) error {
	emails := []string{
		"alice@example.com",
		"bob@example.com",
		"carol@example.com",
		"dave@example.com",
	}

	for _, email := range emails {
		if _, err := s.User().WithEmail(email).Insert(); err != nil {
			return err
		}
	}

	return nil
}
