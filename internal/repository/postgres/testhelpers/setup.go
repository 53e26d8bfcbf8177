package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
	URL    string

	container testcontainers.Container
}

// SetupTestDB connects to TEST_DB_* when TEST_DB_HOST is set, otherwise starts a
// throwaway postgres container. Skips the test when neither is available.
func SetupTestDB(t *testing.T) *TestDB {
	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}

	var (
		connStr   string
		container testcontainers.Container
	)

	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		connStr = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			getEnv("TEST_DB_USER", "postgres"),
			getEnv("TEST_DB_PASSWORD", "postgres"),
			host,
			getEnv("TEST_DB_PORT", "5432"),
			getEnv("TEST_DB_NAME", "pasajes_test"),
			getEnv("TEST_DB_SSLMODE", "disable"),
		)
	} else {
		var err error
		container, connStr, err = startPostgresContainer()
		if err != nil {
			t.Skipf("PostgreSQL not available for integration tests: %v", err)
		}
	}

	// Retry connection with exponential backoff to wait for DB recovery
	var db *sqlx.DB
	var err error
	maxRetries := 10
	retryDelay := 500 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2 // exponential backoff
		}
	}

	if err != nil {
		t.Fatalf("Failed to connect to test database after %d attempts: %v", maxRetries, err)
	}

	logger, _ := zap.NewDevelopment()
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TestDB{
		DB:        db,
		Logger:    logger,
		URL:       connStr,
		container: container,
	}
}

func startPostgresContainer() (testcontainers.Container, string, error) {
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:15.2-alpine"),
		postgres.WithDatabase("pasajes_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, "", fmt.Errorf("start postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", fmt.Errorf("postgres container connection string: %w", err)
	}

	return container, connStr, nil
}

// Close closes the database connection and stops the container if one was started
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
	if tdb.container != nil {
		_ = tdb.container.Terminate(context.Background())
	}
}

// Cleanup truncates every table and resets identities
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	_, err := tdb.DB.ExecContext(ctx,
		"TRUNCATE TABLE pasajes, tipos_pasaje, unidades, rutas RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
