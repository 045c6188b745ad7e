package personrepo

import (
	"context"
	"os"
	"testing"

	"github.com/club41-romania/directory-api/internal/adapters/contracttest"
	"github.com/club41-romania/directory-api/internal/adapters/postgres"
	personrepoport "github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

// Runs against a live Postgres only; set TEST_DATABASE_URL to enable, e.g.
// TEST_DATABASE_URL=postgres://localhost:5432/directory_test go test ./...
func TestContract_PostgresPersonRepo(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE persons`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	contracttest.RunPersonRepo(t, func(t *testing.T) (personrepoport.Repository, contracttest.CleanupFunc) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
