package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	got, err := Generate(12)
	require.NoError(t, err)
	assert.Len(t, got, 12)

	// non-positive length falls back to the default
	got, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_Alphabet(t *testing.T) {
	got, err := Generate(64)
	require.NoError(t, err)
	for _, r := range got {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := MustGenerate(DefaultLength)
		assert.False(t, seen[got], "duplicate short ID generated: %s", got)
		seen[got] = true
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixSite, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "site_"))
	assert.Len(t, got, len(PrefixSite)+1+DefaultLength)
}

func TestParsePrefixedID(t *testing.T) {
	prefix, shortID, err := ParsePrefixedID("pg_xK9mP2vL3nQa")
	require.NoError(t, err)
	assert.Equal(t, "pg", prefix)
	assert.Equal(t, "xK9mP2vL3nQa", shortID)

	_, _, err = ParsePrefixedID("no-underscore")
	assert.Error(t, err)

	_, _, err = ParsePrefixedID("_missing")
	assert.Error(t, err)
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("sec_abc123", PrefixSection))
	assert.Error(t, ValidatePrefix("sec_abc123", PrefixPage))
}
