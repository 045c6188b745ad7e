package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/club41-romania/directory-api/internal/ports/out/blobstore"
)

func TestPutThenRemove(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	ref, err := s.Put(context.Background(), blobstore.Object{
		Filename:    "poza profil.JPG",
		ContentType: "image/jpeg",
		Data:        []byte("jpegdata"),
	})
	require.NoError(t, err)
	require.Equal(t, "/uploads/1700000000000.jpg", ref)

	data, err := os.ReadFile(filepath.Join(dir, "1700000000000.jpg"))
	require.NoError(t, err)
	require.Equal(t, "jpegdata", string(data))

	require.NoError(t, s.Remove(context.Background(), ref))
	_, err = os.Stat(filepath.Join(dir, "1700000000000.jpg"))
	require.True(t, os.IsNotExist(err))
}

func TestPut_CollidingTimestampsGetDistinctNames(t *testing.T) {
	t.Parallel()

	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	s.now = func() time.Time { return time.UnixMilli(42) }

	ref1, err := s.Put(context.Background(), blobstore.Object{Filename: "a.png", Data: []byte("1")})
	require.NoError(t, err)
	ref2, err := s.Put(context.Background(), blobstore.Object{Filename: "b.png", Data: []byte("2")})
	require.NoError(t, err)
	require.NotEqual(t, ref1, ref2)
}

func TestRemove_IgnoresUnknownAndHostileRefs(t *testing.T) {
	t.Parallel()

	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Remove(context.Background(), "/uploads/never-existed.jpg"))
	// A traversal attempt only ever touches the basename.
	require.NoError(t, s.Remove(context.Background(), "/uploads/../../etc/passwd"))
}

func TestPut_RefStaysUnderURLPrefix(t *testing.T) {
	t.Parallel()

	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ref, err := s.Put(context.Background(), blobstore.Object{Filename: "x.gif", Data: []byte("g")})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, URLPrefix+"/"))
}
