package personrepo

import (
	"context"
	"os"
	"testing"

	"github.com/club41-romania/directory-api/internal/adapters/contracttest"
	mongoadapter "github.com/club41-romania/directory-api/internal/adapters/mongo"
	personrepoport "github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

// Runs against a live MongoDB only; set TEST_MONGODB_URI to enable, e.g.
// TEST_MONGODB_URI=mongodb://localhost:27017 go test ./...
func TestContract_MongoPersonRepo(t *testing.T) {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}

	ctx := context.Background()
	client, err := mongoadapter.Connect(ctx, uri)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("directory_test")
	if err := db.Collection(collectionName).Drop(ctx); err != nil {
		t.Fatalf("drop collection: %v", err)
	}

	contracttest.RunPersonRepo(t, func(t *testing.T) (personrepoport.Repository, contracttest.CleanupFunc) {
		t.Helper()
		return NewRepo(db), nil
	})
}
