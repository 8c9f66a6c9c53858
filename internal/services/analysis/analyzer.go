package analysis

import (
	"context"

	"basket/internal/adapters/postgres"
	"basket/internal/domain/report"
	pgrepo "basket/internal/repository/postgres"
	"basket/pkg/logger"
)

// Analyzer runs the aggregate report queries against the grocery database.
//
// Each call opens its own connection and closes it before returning, so a
// connection lives exactly as long as one query. There is no shared state
// across calls and reads are idempotent for unchanged data.
type Analyzer struct {
	dsn string
	log *logger.Logger
}

// New creates an Analyzer for the given connection string
func New(dsn string) *Analyzer {
	return &Analyzer{
		dsn: dsn,
		log: logger.Get().With("service", "analysis"),
	}
}

// Ping verifies the database is reachable. Callers use it to fail fast
// before producing partial output.
func (a *Analyzer) Ping(ctx context.Context) error {
	client, err := postgres.Open(a.dsn)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Health(ctx)
}

// TopItems returns the limit most frequently added items
func (a *Analyzer) TopItems(ctx context.Context, limit int) ([]report.TopItem, error) {
	client, err := postgres.Open(a.dsn)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	items, err := pgrepo.NewReportRepository(client.DB()).TopItems(ctx, limit)
	if err != nil {
		return nil, err
	}

	a.log.Debugw("Fetched top items", "limit", limit, "rows", len(items))
	return items, nil
}

// StoreDistribution returns per-store aggregates
func (a *Analyzer) StoreDistribution(ctx context.Context) ([]report.StoreStat, error) {
	client, err := postgres.Open(a.dsn)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	stores, err := pgrepo.NewReportRepository(client.DB()).StoreDistribution(ctx)
	if err != nil {
		return nil, err
	}

	a.log.Debugw("Fetched store distribution", "rows", len(stores))
	return stores, nil
}

// UserStatistics returns per-user shopping statistics
func (a *Analyzer) UserStatistics(ctx context.Context) ([]report.UserStat, error) {
	client, err := postgres.Open(a.dsn)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	users, err := pgrepo.NewReportRepository(client.DB()).UserStatistics(ctx)
	if err != nil {
		return nil, err
	}

	a.log.Debugw("Fetched user statistics", "rows", len(users))
	return users, nil
}
