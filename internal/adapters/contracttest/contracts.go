package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/club41-romania/directory-api/internal/domain"
	personrepoport "github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

type CleanupFunc = func()

type PersonRepoFactory func(t *testing.T) (personrepoport.Repository, CleanupFunc)

// RunPersonRepo exercises the Repository contract against any backend.
func RunPersonRepo(t *testing.T, newRepo PersonRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(1000, 0).UTC()
	rec := func(club, last, first string) personrepoport.Person {
		return personrepoport.Person{
			CreatedBy:  domain.ClientID("client-a"),
			FirstName:  first,
			LastName:   last,
			BirthDate:  time.Date(1970, 5, 20, 0, 0, 0, 0, time.UTC),
			Club:       club,
			City:       "Brașov",
			Profession: "Inginer",
			Phone:      "+40 721 345 678",
			CreatedAt:  now,
		}
	}

	// Insert assigns distinct identifiers.
	idB, err := repo.Insert(ctx, rec("Club 41 Nr.1 Brașov", "Popescu", "Ion"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	idA, err := repo.Insert(ctx, rec("Club 41 Nr.4 Craiova", "Ionescu", "Dan"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if idA == "" || idB == "" || idA == idB {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", idA, idB)
	}

	got, err := repo.GetByID(ctx, idB)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != idB || got.LastName != "Popescu" || got.Club != "Club 41 Nr.1 Brașov" {
		t.Fatalf("unexpected record: %+v", got)
	}

	// List orders by club, then last name, then first name, without regard
	// to letter case. The lowercase "albu" would sort after "Popescu" in a
	// plain byte-order comparison.
	if _, err := repo.Insert(ctx, rec("Club 41 Nr.1 Brașov", "Popescu", "Andrei")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := repo.Insert(ctx, rec("Club 41 Nr.1 Brașov", "albu", "Vlad")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	ps, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ps) != 4 {
		t.Fatalf("len=%d, want 4", len(ps))
	}
	wantOrder := []struct{ club, last, first string }{
		{"Club 41 Nr.1 Brașov", "albu", "Vlad"},
		{"Club 41 Nr.1 Brașov", "Popescu", "Andrei"},
		{"Club 41 Nr.1 Brașov", "Popescu", "Ion"},
		{"Club 41 Nr.4 Craiova", "Ionescu", "Dan"},
	}
	for i, w := range wantOrder {
		if ps[i].Club != w.club || ps[i].LastName != w.last || ps[i].FirstName != w.first {
			t.Fatalf("order[%d]=%s/%s/%s, want %s/%s/%s",
				i, ps[i].Club, ps[i].LastName, ps[i].FirstName, w.club, w.last, w.first)
		}
	}

	// Delete removes exactly the targeted record.
	if err := repo.Delete(ctx, idB); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, idB); !errors.Is(err, personrepoport.ErrNotFound) {
		t.Fatalf("GetByID after delete: err=%v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, idB); !errors.Is(err, personrepoport.ErrNotFound) {
		t.Fatalf("second Delete: err=%v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, domain.PersonID("ffffffffffffffffffffffff")); !errors.Is(err, personrepoport.ErrNotFound) {
		t.Fatalf("Delete unknown id: err=%v, want ErrNotFound", err)
	}

	ps, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ps) != 3 {
		t.Fatalf("len=%d after delete, want 3", len(ps))
	}
}
