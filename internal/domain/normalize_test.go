package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"  ion   popescu ", "Ion Popescu"},
		{"ION POPESCU", "Ion Popescu"},
		{"ioana-maria", "Ioana-maria"},
		{"ştefan  cel  mare", "Ştefan Cel Mare"},
		{"", ""},
		{"   ", ""},
		{"x", "X"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeName(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"  ion   popescu ", "MARIA pop", "", "a b c", "Ion Popescu"}
	for _, in := range inputs {
		once := NormalizeName(in)
		assert.Equal(t, once, NormalizeName(once), "input %q", in)
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"0721345678", "+40 721 345 678"},
		{"40721345678", "+40 721 345 678"},
		{"721345678", "+40 721 345 678"},
		{"+40 721 345 678", "+40 721 345 678"},
		{"0721 345 678", "+40 721 345 678"},
		{"(0721) 345-678", "+40 721 345 678"},
		{"abc", ""},
		{"", ""},
		// Too short and too long inputs fall through as bare digits.
		{"12345", "12345"},
		{"0040721345678", "0040721345678"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestNormalizePhone_IdempotentOnCanonicalForm(t *testing.T) {
	t.Parallel()

	inputs := []string{"0721345678", "40721345678", "721345678"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "input %q", in)
	}
}

func TestKnownClub(t *testing.T) {
	t.Parallel()

	assert.True(t, KnownClub("Club 41 Nr.12 Sibiu"))
	assert.True(t, KnownClub(DefaultClub))
	assert.False(t, KnownClub("Club 41 Nr.99 Atlantida"))
	assert.False(t, KnownClub(""))
}
