package personrepo

import (
	"testing"

	"github.com/club41-romania/directory-api/internal/adapters/contracttest"
	personrepoport "github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

func TestContract_MemoryPersonRepo(t *testing.T) {
	contracttest.RunPersonRepo(t, func(t *testing.T) (personrepoport.Repository, contracttest.CleanupFunc) {
		t.Helper()
		return NewRepo(), nil
	})
}
