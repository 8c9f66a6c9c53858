package report

import (
	"database/sql"
	"time"
)

// TopItem is one row of the most-frequently-added-items view,
// aggregated over grocery_items by item name.
type TopItem struct {
	ItemName    string          `db:"item_name"`
	Frequency   int64           `db:"frequency"`
	UniqueUsers int64           `db:"unique_users"`
	AvgQuantity sql.NullFloat64 `db:"avg_quantity"`
	FirstAdded  time.Time       `db:"first_added"`
	LastUpdated time.Time       `db:"last_updated"`
}

// AvgQuantityValue coerces a null average to 0. SQL null semantics are
// passed through by the query layer; coercion belongs to the callers that
// format or chart the value.
func (i TopItem) AvgQuantityValue() float64 {
	if !i.AvgQuantity.Valid {
		return 0
	}
	return i.AvgQuantity.Float64
}

// StoreStat is one row of the per-store distribution view.
// Rows with a null or empty store never appear here.
type StoreStat struct {
	Store       string `db:"store"`
	ItemCount   int64  `db:"item_count"`
	UniqueItems int64  `db:"unique_items"`
	Customers   int64  `db:"customers"`
}

// UserStat is one row of the per-user shopping statistics view.
// Users with no items still appear with zero counts and null dates
// (left-join semantics).
type UserStat struct {
	Email         string       `db:"email"`
	TotalItems    int64        `db:"total_items"`
	UniqueItems   int64        `db:"unique_items"`
	StoresVisited int64        `db:"stores_visited"`
	FirstItemDate sql.NullTime `db:"first_item_date"`
	LastItemDate  sql.NullTime `db:"last_item_date"`
}
