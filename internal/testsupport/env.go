package testsupport

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// DatabaseURLFromEnv reads the integration-test connection string.
// Tests are skipped when no database is configured.
func DatabaseURLFromEnv(t *testing.T) string {
	t.Helper()

	// Load .env.test for local development (ignore error if not exists)
	_ = godotenv.Load(".env.test")

	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		return url
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	t.Skip("integration environment missing, set TEST_DATABASE_URL or DATABASE_URL to run")
	return ""
}
