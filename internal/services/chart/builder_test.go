package chart

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basket/internal/domain/report"
)

func sampleItems() []report.TopItem {
	return []report.TopItem{
		{ItemName: "Milk", Frequency: 12, UniqueUsers: 3, AvgQuantity: sql.NullFloat64{Float64: 2.5, Valid: true}},
		{ItemName: "Bread", Frequency: 9, UniqueUsers: 2, AvgQuantity: sql.NullFloat64{Float64: 1.0, Valid: true}},
		{ItemName: "Eggs", Frequency: 4, UniqueUsers: 2, AvgQuantity: sql.NullFloat64{}},
	}
}

func TestBuilder_BarChart(t *testing.T) {
	b := NewBuilder()

	bar := b.BarChart(sampleItems())
	require.NotNil(t, bar)

	var buf bytes.Buffer
	require.NoError(t, bar.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "Top 3 Most Frequently Added Grocery Items")
	assert.Contains(t, out, "Milk")
	assert.Contains(t, out, "Bread")
	assert.Contains(t, out, "Eggs")
	assert.Contains(t, out, "Unique Users", "hover detail carries the user count")
}

func TestBuilder_Dashboard(t *testing.T) {
	b := NewBuilder()

	stores := []report.StoreStat{
		{Store: "Whole Foods", ItemCount: 20, UniqueItems: 10, Customers: 3},
		{Store: "Costco", ItemCount: 12, UniqueItems: 8, Customers: 2},
	}
	users := []report.UserStat{
		{Email: "alice@example.com", TotalItems: 14, UniqueItems: 9},
	}

	page := b.Dashboard(sampleItems(), stores, users)
	require.NotNil(t, page)

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "Top 3 Most Frequent Items")
	assert.Contains(t, out, "Distribution by Store")
	assert.Contains(t, out, "Items per User")
	assert.Contains(t, out, "Average Quantity by Item")
	assert.Contains(t, out, "Whole Foods")
	assert.Contains(t, out, "alice@example.com")
}

func TestBuilder_Dashboard_OmitsEmptyPanels(t *testing.T) {
	b := NewBuilder()

	page := b.Dashboard(sampleItems(), nil, nil)
	require.NotNil(t, page)

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf), "empty store and user views must not break rendering")
	out := buf.String()

	assert.Contains(t, out, "Top 3 Most Frequent Items")
	assert.Contains(t, out, "Average Quantity by Item")
	assert.NotContains(t, out, "Distribution by Store")
	assert.NotContains(t, out, "Items per User")
}

func TestBuilder_Dashboard_StoresWithoutUsers(t *testing.T) {
	b := NewBuilder()

	stores := []report.StoreStat{
		{Store: "Corner Shop", ItemCount: 5, UniqueItems: 4, Customers: 1},
	}

	page := b.Dashboard(sampleItems(), stores, nil)

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "Distribution by Store")
	assert.NotContains(t, out, "Items per User")
}

func TestBuilder_Save(t *testing.T) {
	b := NewBuilder()

	path := filepath.Join(t.TempDir(), "analysis.html")
	require.NoError(t, b.Save(b.BarChart(sampleItems()), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<html", "output is a self-contained HTML document")
	assert.Contains(t, string(content), "Milk")
}

func TestBuilder_Save_BadPath(t *testing.T) {
	b := NewBuilder()

	err := b.Save(b.BarChart(sampleItems()), filepath.Join(t.TempDir(), "missing", "analysis.html"))
	require.Error(t, err)
}
