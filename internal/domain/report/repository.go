package report

import (
	"context"
)

// Repository defines the interface for the read-only aggregate views.
// All three queries return an empty slice, not an error, when nothing matches.
type Repository interface {
	// TopItems returns the most frequently added items, ordered by
	// frequency descending, truncated to limit after sorting.
	TopItems(ctx context.Context, limit int) ([]TopItem, error)

	// StoreDistribution returns per-store item counts, ordered by
	// item count descending. Null and empty stores are excluded.
	StoreDistribution(ctx context.Context) ([]StoreStat, error)

	// UserStatistics returns one row per user ordered by total items
	// descending, including users with zero items.
	UserStatistics(ctx context.Context) ([]UserStat, error)
}
