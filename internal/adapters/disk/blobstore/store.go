package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/club41-romania/directory-api/internal/ports/out/blobstore"
)

// URLPrefix is the server-relative path under which stored files are served.
const URLPrefix = "/uploads"

// Store writes uploads to a server-local directory under timestamp-based
// names and returns "/uploads/<name>" references.
type Store struct {
	dir string

	now func() time.Time
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("empty upload directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

func (s *Store) Put(ctx context.Context, obj blobstore.Object) (string, error) {
	_ = ctx
	ext := strings.ToLower(filepath.Ext(obj.Filename))

	// Timestamp-based name; suffix on the rare same-millisecond collision.
	ts := s.now().UnixMilli()
	for i := 0; ; i++ {
		name := fmt.Sprintf("%d%s", ts, ext)
		if i > 0 {
			name = fmt.Sprintf("%d-%d%s", ts, i, ext)
		}
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			return "", fmt.Errorf("create upload file: %w", err)
		}
		if _, err := f.Write(obj.Data); err != nil {
			f.Close()
			_ = os.Remove(f.Name())
			return "", fmt.Errorf("write upload file: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close upload file: %w", err)
		}
		return URLPrefix + "/" + name, nil
	}
}

func (s *Store) Remove(ctx context.Context, ref string) error {
	_ = ctx
	// Only the basename is honored, so a reference can never escape the
	// upload directory.
	name := path.Base(ref)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// Dir returns the backing directory, for wiring the static file route.
func (s *Store) Dir() string { return s.dir }
