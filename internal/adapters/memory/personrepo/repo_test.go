package personrepo

import (
	"context"
	"testing"

	"github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

func TestList_SortsClubThenLastThenFirst(t *testing.T) {
	t.Parallel()

	repo := NewRepo()
	ctx := context.Background()

	seed := []personrepo.Person{
		{Club: "B", LastName: "Zamfir", FirstName: "Ana"},
		{Club: "A", LastName: "Zamfir", FirstName: "Ana"},
		{Club: "A", LastName: "Albu", FirstName: "Radu"},
		{Club: "A", LastName: "Albu", FirstName: "Dana"},
	}
	for _, p := range seed {
		if _, err := repo.Insert(ctx, p); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"A/Albu/Dana", "A/Albu/Radu", "A/Zamfir/Ana", "B/Zamfir/Ana"}
	for i, w := range want {
		k := got[i].Club + "/" + got[i].LastName + "/" + got[i].FirstName
		if k != w {
			t.Fatalf("order[%d]=%s, want %s", i, k, w)
		}
	}
}

func TestInsert_AssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	repo := NewRepo()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id, err := repo.Insert(ctx, personrepo.Person{LastName: "Pop"})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if seen[string(id)] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[string(id)] = true
	}
}
