package testutil

import (
	"database/sql"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const postgresImage = "postgres:17.6-alpine3.22"

// StartPostgres runs a throwaway Postgres container and returns a connected handle.
// The test is skipped when no container runtime is available.
func StartPostgres(t *testing.T) *sql.DB {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := t.Context()
	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("storefront"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("postgres.Run: %v", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("container.ConnectionString: %v", err)
	}

	database, err := db.Connect(ctx, connStr)
	if err != nil {
		t.Fatalf("db.Connect: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}
