package blobstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"poza.jpg", "poza.jpg"},
		{"poza profil.jpg", "poza_profil.jpg"},
		{"ședință/2025?.png", "_edin___2025_.png"},
		{"a-b_c.D", "a-b_c.D"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	s := &Store{
		now:       func() time.Time { return time.UnixMilli(1700000000000) },
		newSuffix: func() string { return "ab12cd34" },
	}
	assert.Equal(t, "1700000000000-ab12cd34-ion_popescu.jpg", s.objectKey("ion popescu.jpg"))
}

func TestKeyFromRef(t *testing.T) {
	t.Parallel()

	s := &Store{publicBaseURL: "https://fotos.s3.amazonaws.com"}

	key, ok := s.keyFromRef("https://fotos.s3.amazonaws.com/123-ab-poza.jpg")
	assert.True(t, ok)
	assert.Equal(t, "123-ab-poza.jpg", key)

	_, ok = s.keyFromRef("/uploads/123.jpg")
	assert.False(t, ok)

	_, ok = s.keyFromRef("https://fotos.s3.amazonaws.com/")
	assert.False(t, ok)
}

func TestNew_RequiresBucket(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{}, WithLogger(zap.NewNop()))
	assert.Error(t, err)
}
