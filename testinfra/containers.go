package testinfra

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Creates the destination tables of all the categories
//
//go:embed schema.sql
var Schema string

const (
	PostgresImage    = "postgres:16-alpine"
	PostgresUser     = "postgres"
	PostgresPassword = "postgres"
	PostgresDB       = "postgres"

	TEST_CONN_ENV_VAR = "DWD_TEST_CONN"
)

var (
	containerOnce sync.Once
	containerConn string
	containerErr  error
)

func StartPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	ctr, err := postgres.Run(ctx,
		PostgresImage,
		postgres.WithUsername(PostgresUser),
		postgres.WithPassword(PostgresPassword),
		postgres.WithDatabase(PostgresDB),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("start postgres: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, "", fmt.Errorf("get connection string: %w", err)
	}

	return ctr, connStr, nil
}

// Returns the connection string of the test database.
// Priority: DWD_TEST_CONN env var > container started once per test binary > skip test.
// Skipped in short mode.
func RequirePostgres(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	if connString := os.Getenv(TEST_CONN_ENV_VAR); connString != "" {
		return connString
	}

	containerOnce.Do(func() {
		_, containerConn, containerErr = StartPostgres(context.Background())
	})
	if containerErr != nil {
		t.Skipf("%s not set and Docker unavailable: %v", TEST_CONN_ENV_VAR, containerErr)
	}
	return containerConn
}
