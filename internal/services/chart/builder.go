package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"basket/internal/domain/report"
	"basket/pkg/errors"
	"basket/pkg/logger"
)

// Series colors follow the console report's palette: blue for item
// frequency, green for per-user totals, red for average quantity.
const (
	colorFrequency = "#3498db"
	colorUsers     = "#2ecc71"
	colorQuantity  = "#e74c3c"
)

// Renderable is any figure that can serialize itself as a self-contained
// interactive HTML document. Both single charts and dashboard pages satisfy it.
type Renderable interface {
	Render(w io.Writer) error
}

// Builder turns the aggregate views into interactive figures
type Builder struct {
	log *logger.Logger
}

// NewBuilder creates a chart builder
func NewBuilder() *Builder {
	return &Builder{
		log: logger.Get().With("service", "chart"),
	}
}

// BarChart renders the top items as a single bar chart of frequency by item.
// Bar order matches the query's descending sort; hovering a bar shows the
// unique-user count and one-decimal average quantity.
func (b *Builder) BarChart(items []report.TopItem) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "Grocery Analysis",
			Width:           "900px",
			Height:          "520px",
			BackgroundColor: "#f8f9fa",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Top %d Most Frequently Added Grocery Items", len(items)),
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: hoverFormatter(items),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Grocery Item",
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency"}),
	)

	bar.SetXAxis(itemNames(items))
	bar.AddSeries("Total Count", frequencyData(items),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorFrequency}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	return bar
}

// Dashboard renders the four-panel layout: top-10 item frequency, store
// distribution donut, top shoppers, and average quantity per item. The store
// and shopper panels are omitted when their view is empty; the item panels
// are always attempted.
func (b *Builder) Dashboard(top10 []report.TopItem, stores []report.StoreStat, users []report.UserStat) *components.Page {
	page := components.NewPage()
	page.PageTitle = "Grocery Shopping Analytics Dashboard"
	page.SetLayout(components.PageFlexLayout)

	page.AddCharts(b.topItemsPanel(top10))

	if len(stores) > 0 {
		page.AddCharts(b.storePanel(stores))
	}
	if len(users) > 0 {
		page.AddCharts(b.shopperPanel(users))
	}

	page.AddCharts(b.quantityPanel(truncateItems(top10, 5)))

	return page
}

// Save writes the figure to path as a self-contained HTML document
func (b *Builder) Save(fig Renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := fig.Render(f); err != nil {
		return errors.Wrap(err, "failed to render chart")
	}

	fmt.Printf("Chart saved to %s\n", path)
	b.log.Debugw("Figure written", "path", path)
	return nil
}

func (b *Builder) topItemsPanel(items []report.TopItem) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(panelSize()),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Top %d Most Frequent Items", len(items))}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45}}),
	)

	bar.SetXAxis(itemNames(items))
	bar.AddSeries("Frequency", frequencyData(items),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorFrequency}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	return bar
}

func (b *Builder) storePanel(stores []report.StoreStat) *charts.Pie {
	if len(stores) > 5 {
		stores = stores[:5]
	}

	data := make([]opts.PieData, 0, len(stores))
	for _, s := range stores {
		data = append(data, opts.PieData{Name: s.Store, Value: s.ItemCount})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(panelSize()),
		charts.WithTitleOpts(opts.Title{Title: "Distribution by Store"}),
	)

	pie.AddSeries("Items", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"30%", "60%"}}),
	)

	return pie
}

func (b *Builder) shopperPanel(users []report.UserStat) *charts.Bar {
	if len(users) > 5 {
		users = users[:5]
	}

	emails := make([]string, 0, len(users))
	data := make([]opts.BarData, 0, len(users))
	for _, u := range users {
		emails = append(emails, u.Email)
		data = append(data, opts.BarData{Value: u.TotalItems})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(panelSize()),
		charts.WithTitleOpts(opts.Title{Title: "Items per User"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45}}),
	)

	bar.SetXAxis(emails)
	bar.AddSeries("Items", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorUsers}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	return bar
}

func (b *Builder) quantityPanel(items []report.TopItem) *charts.Bar {
	data := make([]opts.BarData, 0, len(items))
	for _, item := range items {
		// One-decimal label values; nulls coerce to 0 at this boundary.
		data = append(data, opts.BarData{Value: math.Round(item.AvgQuantityValue()*10) / 10})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(panelSize()),
		charts.WithTitleOpts(opts.Title{Title: "Average Quantity by Item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45}}),
	)

	bar.SetXAxis(itemNames(items))
	bar.AddSeries("Avg Quantity", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorQuantity}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	return bar
}

// hoverFormatter builds the per-bar tooltip: item name, total count,
// unique users, and one-decimal average quantity.
func hoverFormatter(items []report.TopItem) types.FuncStr {
	type detail struct {
		Users int64   `json:"users"`
		Avg   float64 `json:"avg"`
	}

	details := make([]detail, 0, len(items))
	for _, item := range items {
		details = append(details, detail{Users: item.UniqueUsers, Avg: item.AvgQuantityValue()})
	}

	payload, err := json.Marshal(details)
	if err != nil {
		return ""
	}

	return types.FuncStr(fmt.Sprintf(
		`function (p) { var d = %s[p.dataIndex]; return '<b>' + p.name + '</b>'
			+ '<br/>Total Count: ' + p.value
			+ '<br/>Unique Users: ' + d.users
			+ '<br/>Avg Quantity: ' + d.avg.toFixed(1); }`,
		payload,
	))
}

func itemNames(items []report.TopItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.ItemName)
	}
	return names
}

func frequencyData(items []report.TopItem) []opts.BarData {
	data := make([]opts.BarData, 0, len(items))
	for _, item := range items {
		data = append(data, opts.BarData{Value: item.Frequency})
	}
	return data
}

func truncateItems(items []report.TopItem, n int) []report.TopItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func panelSize() opts.Initialization {
	return opts.Initialization{Width: "580px", Height: "380px"}
}
