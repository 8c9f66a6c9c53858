package report

import (
	"bytes"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basket/internal/domain/report"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
}

func newTestFormatter(buf *bytes.Buffer) *Formatter {
	f := New(buf)
	f.now = fixedClock
	return f
}

func TestFormatter_WriteSummary(t *testing.T) {
	var buf bytes.Buffer
	f := newTestFormatter(&buf)

	items := []report.TopItem{
		{
			ItemName:    "Milk",
			Frequency:   12,
			UniqueUsers: 3,
			AvgQuantity: sql.NullFloat64{Float64: 2.25, Valid: true},
		},
		{
			ItemName:    "Bread",
			Frequency:   7,
			UniqueUsers: 2,
			AvgQuantity: sql.NullFloat64{Float64: 1.0, Valid: true},
		},
	}
	stores := []report.StoreStat{
		{Store: "Whole Foods", ItemCount: 24, UniqueItems: 12, Customers: 4},
	}
	users := []report.UserStat{
		{Email: "alice@example.com", TotalItems: 12, UniqueItems: 8},
	}

	f.WriteSummary(items, stores, users)
	out := buf.String()

	assert.Contains(t, out, "GROCERY ITEM ANALYSIS REPORT")
	assert.Contains(t, out, "Generated at: 2024-06-15 10:30:00")
	assert.Contains(t, out, strings.Repeat("=", 60))

	assert.Contains(t, out, "TOP 5 MOST FREQUENT ITEMS:")
	assert.Contains(t, out, "1. Milk")
	assert.Contains(t, out, "Avg Qty: 2.2")
	assert.Contains(t, out, "2. Bread")

	assert.Contains(t, out, "STORE DISTRIBUTION:")
	assert.Contains(t, out, "Whole Foods")
	assert.Contains(t, out, "Customers:  4")

	assert.Contains(t, out, "TOP SHOPPERS:")
	assert.Contains(t, out, "alice@example.com")
}

func TestFormatter_NullAverageCoercesToZero(t *testing.T) {
	var buf bytes.Buffer
	f := newTestFormatter(&buf)

	items := []report.TopItem{
		{ItemName: "Mystery", Frequency: 1, UniqueUsers: 1, AvgQuantity: sql.NullFloat64{}},
	}

	require.NotPanics(t, func() {
		f.WriteSummary(items, nil, nil)
	})

	assert.Contains(t, buf.String(), "Avg Qty: 0.0", "null averages render as 0.0, never propagate")
}

func TestFormatter_EmptyViews(t *testing.T) {
	var buf bytes.Buffer
	f := newTestFormatter(&buf)

	f.WriteSummary(nil, nil, nil)
	out := buf.String()

	assert.Contains(t, out, "No item data available")
	assert.Contains(t, out, "No store data available")
	assert.Contains(t, out, "No user data available")
}

func TestFormatter_SectionRowCaps(t *testing.T) {
	var buf bytes.Buffer
	f := newTestFormatter(&buf)

	items := make([]report.TopItem, 8)
	for i := range items {
		items[i] = report.TopItem{ItemName: "Item", Frequency: int64(8 - i), UniqueUsers: 1}
	}
	stores := make([]report.StoreStat, 6)
	for i := range stores {
		stores[i] = report.StoreStat{Store: "Store", ItemCount: int64(6 - i)}
	}
	users := make([]report.UserStat, 6)
	for i := range users {
		users[i] = report.UserStat{Email: "user@test.local", TotalItems: int64(6 - i)}
	}

	f.WriteSummary(items, stores, users)
	out := buf.String()

	assert.Equal(t, 5, strings.Count(out, "Avg Qty:"), "top items section shows at most 5 rows")
	assert.Equal(t, 3, strings.Count(out, "Customers:"), "store section shows at most 3 rows")
	assert.Contains(t, out, "5. Item")
	assert.NotContains(t, out, "6. Item")
}

func TestFormatter_HumanizedCounts(t *testing.T) {
	var buf bytes.Buffer
	f := newTestFormatter(&buf)

	items := []report.TopItem{
		{ItemName: "Rice", Frequency: 1234, UniqueUsers: 9, AvgQuantity: sql.NullFloat64{Float64: 1, Valid: true}},
	}

	f.WriteSummary(items, nil, nil)

	assert.Contains(t, buf.String(), "Count: 1,234")
}
