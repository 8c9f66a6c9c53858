package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"basket/internal/adapters/config"
	"basket/internal/adapters/errors/noop"
	"basket/internal/adapters/errors/sentry"
	"basket/internal/services/analysis"
	"basket/internal/services/chart"
	"basket/internal/services/report"
	"basket/pkg/errors"
	"basket/pkg/logger"
)

const defaultOutput = "grocery_analysis.html"

func main() {
	var (
		output      string
		dashboard   bool
		dbURL       string
		openBrowser bool
	)

	flag.StringVar(&output, "output", defaultOutput, "Output file for the chart (HTML format)")
	flag.StringVar(&output, "o", defaultOutput, "Output file for the chart (shorthand)")
	flag.BoolVar(&dashboard, "dashboard", false, "Create comprehensive dashboard instead of single chart")
	flag.BoolVar(&dashboard, "d", false, "Create comprehensive dashboard (shorthand)")
	flag.StringVar(&dbURL, "db-url", "", "Database connection URL (overrides DATABASE_URL)")
	flag.BoolVar(&openBrowser, "open", false, "Open the generated chart in the default browser")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Get()
	logger.SetErrorTracker(initErrorTracker(cfg, log))

	dsn := cfg.Database.Resolve(dbURL)
	analyzer := analysis.New(dsn)

	ctx := context.Background()

	// Connection failures are the first failure tier: report the driver
	// error and stop before any report output is produced.
	if err := analyzer.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, analyzer, output, dashboard, openBrowser); err != nil {
		fmt.Fprintf(os.Stderr, "Error during analysis: %v\n", err)
		os.Exit(1)
	}
}

// run executes the full analysis: console summary first, then the figure.
// There is no partial-success reporting; any error aborts the run after
// whatever console text was already printed.
func run(ctx context.Context, analyzer *analysis.Analyzer, output string, dashboard, openBrowser bool) error {
	topItems, err := analyzer.TopItems(ctx, 5)
	if err != nil {
		return err
	}
	stores, err := analyzer.StoreDistribution(ctx)
	if err != nil {
		return err
	}
	users, err := analyzer.UserStatistics(ctx)
	if err != nil {
		return err
	}

	report.New(os.Stdout).WriteSummary(topItems, stores, users)

	builder := chart.NewBuilder()

	if dashboard {
		top10, err := analyzer.TopItems(ctx, 10)
		if err != nil {
			return err
		}

		page := builder.Dashboard(top10, stores, users)
		if err := builder.Save(page, output); err != nil {
			return err
		}
		fmt.Println("\nDashboard created successfully!")
	} else {
		if len(topItems) == 0 {
			fmt.Println("No data found in the database.")
			return nil
		}

		bar := builder.BarChart(topItems)
		if err := builder.Save(bar, output); err != nil {
			return err
		}
		fmt.Printf("\nAnalysis complete! Chart saved to %s\n", output)
	}

	if openBrowser {
		if err := openInBrowser(output); err != nil {
			logger.Warnf("Could not open %s in browser: %v", output, err)
		}
	}

	return nil
}

// openInBrowser launches the platform's default browser on the output file
func openInBrowser(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", path).Start()
	case "linux":
		return exec.Command("xdg-open", path).Start()
	default:
		return errors.Newf("unsupported platform %s", runtime.GOOS)
	}
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to initialize Sentry: %v", err)
		return noop.New()
	}

	log.Info("Error tracking initialized (Sentry)")
	return tracker
}
