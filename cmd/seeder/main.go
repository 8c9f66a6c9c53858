package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"basket/internal/adapters/config"
	"basket/internal/adapters/postgres"
	devseeds "basket/internal/seeds/dev"
	testseeds "basket/internal/seeds/test"
	"basket/internal/testsupport/seeds"
	"basket/pkg/logger"
)

type seedFunc func(context.Context, *seeds.Seeder) error

func main() {
	env := flag.String("env", "dev", "Environment: dev, test")
	dryRun := flag.Bool("dry-run", false, "List seed functions without executing")
	dbURL := flag.String("db-url", "", "Database connection URL (overrides DATABASE_URL)")
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
	log.Infow("Starting seeder", "environment", *env, "dry_run", *dryRun)

	seedFuncs := getSeedFunctions(*env)
	if len(seedFuncs) == 0 {
		log.Warnw("No seeds available for environment", "environment", *env)
		return
	}

	if *dryRun {
		log.Infow("Dry-run mode: seed functions validated", "count", len(seedFuncs))
		return
	}

	client, err := postgres.Open(cfg.Database.Resolve(*dbURL))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	seeder := seeds.New(client.DB()).WithContext(ctx)

	for i, fn := range seedFuncs {
		log.Infow("Executing seed", "step", i+1, "total", len(seedFuncs))

		if err := fn(ctx, seeder); err != nil {
			log.Errorw("Failed to execute seed", "step", i+1, "error", err)
			os.Exit(1)
		}
	}

	log.Info("All seeds applied successfully")
}

// getSeedFunctions returns the ordered seed functions for an environment
func getSeedFunctions(env string) []seedFunc {
	switch env {
	case "dev":
		return []seedFunc{
			devseeds.SeedUsers,
			devseeds.SeedGroceryItems,
		}
	case "test":
		return []seedFunc{
			testseeds.SeedBasics,
		}
	default:
		return nil
	}
}
