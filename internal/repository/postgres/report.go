package postgres

import (
	"context"

	"basket/internal/domain/report"
	"basket/pkg/errors"
)

// Compile-time check that we implement the interface
var _ report.Repository = (*ReportRepository)(nil)

// ReportRepository implements report.Repository using sqlx
type ReportRepository struct {
	db DBTX
}

// NewReportRepository creates a new report repository
func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

// TopItems returns the most frequently added grocery items across all users.
// The quantity average is cast to float before aggregation so integer
// quantities do not truncate; null averages are passed through untouched.
func (r *ReportRepository) TopItems(ctx context.Context, limit int) ([]report.TopItem, error) {
	if limit < 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "limit must be non-negative")
	}

	query := `
		SELECT
			name AS item_name,
			COUNT(*) AS frequency,
			COUNT(DISTINCT user_id) AS unique_users,
			AVG(CAST(quantity AS FLOAT)) AS avg_quantity,
			MIN(created_at) AS first_added,
			MAX(updated_at) AS last_updated
		FROM grocery_items
		GROUP BY name
		ORDER BY frequency DESC
		LIMIT $1`

	items := make([]report.TopItem, 0)
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, errors.Wrap(err, "failed to query top items")
	}

	return items, nil
}

// StoreDistribution returns per-store aggregates, skipping rows where the
// store is null or empty.
func (r *ReportRepository) StoreDistribution(ctx context.Context) ([]report.StoreStat, error) {
	query := `
		SELECT
			store,
			COUNT(*) AS item_count,
			COUNT(DISTINCT name) AS unique_items,
			COUNT(DISTINCT user_id) AS customers
		FROM grocery_items
		WHERE store IS NOT NULL AND store != ''
		GROUP BY store
		ORDER BY item_count DESC`

	stores := make([]report.StoreStat, 0)
	if err := r.db.SelectContext(ctx, &stores, query); err != nil {
		return nil, errors.Wrap(err, "failed to query store distribution")
	}

	return stores, nil
}

// UserStatistics returns one row per user. The left join keeps users with
// zero items in the result with zero counts and null date aggregates.
func (r *ReportRepository) UserStatistics(ctx context.Context) ([]report.UserStat, error) {
	query := `
		SELECT
			u.email,
			COUNT(gi.id) AS total_items,
			COUNT(DISTINCT gi.name) AS unique_items,
			COUNT(DISTINCT gi.store) AS stores_visited,
			MIN(gi.created_at) AS first_item_date,
			MAX(gi.created_at) AS last_item_date
		FROM users u
		LEFT JOIN grocery_items gi ON u.id = gi.user_id
		GROUP BY u.id, u.email
		ORDER BY total_items DESC`

	users := make([]report.UserStat, 0)
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, errors.Wrap(err, "failed to query user statistics")
	}

	return users, nil
}
