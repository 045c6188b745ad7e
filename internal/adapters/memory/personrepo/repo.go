package personrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/club41-romania/directory-api/internal/domain"
	"github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

// Repo is an in-memory implementation of personrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.PersonID]personrepo.Person
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.PersonID]personrepo.Person),
	}
}

func (r *Repo) Insert(ctx context.Context, p personrepo.Person) (domain.PersonID, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	id := domain.PersonID(uuid.NewString())
	p.ID = id
	r.byID[id] = p
	return id, nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.PersonID) (personrepo.Person, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return personrepo.Person{}, personrepo.ErrNotFound
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context) ([]personrepo.Person, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]personrepo.Person, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	SortPersons(out)
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.PersonID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return personrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// SortPersons orders records by club, last name, first name ascending
// (case-insensitive), with the ID as a deterministic tiebreak.
func SortPersons(ps []personrepo.Person) {
	sort.Slice(ps, func(i, j int) bool {
		if c := compareFold(ps[i].Club, ps[j].Club); c != 0 {
			return c < 0
		}
		if c := compareFold(ps[i].LastName, ps[j].LastName); c != 0 {
			return c < 0
		}
		if c := compareFold(ps[i].FirstName, ps[j].FirstName); c != 0 {
			return c < 0
		}
		return string(ps[i].ID) < string(ps[j].ID)
	})
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
