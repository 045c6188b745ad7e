package blobstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/club41-romania/directory-api/internal/ports/out/blobstore"
)

// Store is an in-memory implementation of blobstore.Store, used in tests and
// for local development without a disk or bucket. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	seq  int
	objs map[string]blobstore.Object
}

func NewStore() *Store {
	return &Store{objs: make(map[string]blobstore.Object)}
}

func (s *Store) Put(ctx context.Context, obj blobstore.Object) (string, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	ref := fmt.Sprintf("mem://%d-%s", s.seq, obj.Filename)
	s.objs[ref] = obj
	return ref, nil
}

func (s *Store) Remove(ctx context.Context, ref string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objs, ref)
	return nil
}

// Get returns a stored object; test helper.
func (s *Store) Get(ref string) (blobstore.Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objs[ref]
	return obj, ok
}

// Len reports how many objects are stored; test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objs)
}
