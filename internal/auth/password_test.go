package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	stored, err := HashPassword("correct horse")
	require.NoError(t, err)

	digest, salt, ok := strings.Cut(stored, ".")
	require.True(t, ok)
	assert.Len(t, digest, 128)
	assert.Len(t, salt, 32)

	assert.True(t, VerifyPassword("correct horse", stored))
	assert.False(t, VerifyPassword("correct horsE", stored))
	assert.False(t, VerifyPassword("", stored))
}

func TestHashPassword_FreshSaltEachCall(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, VerifyPassword("same", a))
	assert.True(t, VerifyPassword("same", b))
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"no separator", "abcdef"},
		{"empty salt", strings.Repeat("ab", 64) + "."},
		{"empty digest", ".abcd"},
		{"non hex digest", strings.Repeat("zz", 64) + ".abcd"},
		{"short digest", "abcd.abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("anything", tt.stored))
		})
	}
}
