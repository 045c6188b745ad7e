package blobstore

import "context"

// Object is an uploaded file buffer together with the metadata the backends
// need to name and serve it.
type Object struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Store persists uploaded files and hands back a durable reference.
//
// The reference format is backend-specific: a server-relative path for the
// local-disk backend, a public URL for the remote one. Callers treat it as
// opaque and only ever pass it back to Remove.
type Store interface {
	// Put stores the object and returns its durable reference.
	Put(ctx context.Context, obj Object) (string, error)

	// Remove deletes the backing object for a reference previously returned
	// by Put. Removing an unknown reference is not an error.
	Remove(ctx context.Context, ref string) error
}
