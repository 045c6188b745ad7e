package blobstore

import (
	"context"
	"testing"

	"github.com/club41-romania/directory-api/internal/ports/out/blobstore"
)

func TestPutGetRemove(t *testing.T) {
	t.Parallel()
	s := NewStore()

	ref1, err := s.Put(context.Background(), blobstore.Object{Filename: "a.jpg", Data: []byte("1")})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	ref2, err := s.Put(context.Background(), blobstore.Object{Filename: "a.jpg", Data: []byte("2")})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if ref1 == ref2 {
		t.Fatalf("duplicate refs: %s", ref1)
	}

	obj, ok := s.Get(ref2)
	if !ok || string(obj.Data) != "2" {
		t.Fatalf("Get(%s) = %v %v", ref2, obj, ok)
	}

	if err := s.Remove(context.Background(), ref1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
	// Removing an unknown reference is not an error.
	if err := s.Remove(context.Background(), "mem://999-nope"); err != nil {
		t.Fatalf("Remove unknown: %v", err)
	}
}
