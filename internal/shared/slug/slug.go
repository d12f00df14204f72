// Package slug turns free-form titles into URL slugs. Uniqueness within a
// scope is the caller's concern; this package only produces candidates and
// collision suffixes.
package slug

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// SuffixLength is the length of the random collision suffix.
	SuffixLength = 4

	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// MaxLength caps generated slugs to keep them index-friendly.
	MaxLength = 80
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)

	// Strips combining marks left over after NFD decomposition, so
	// "Café" slugs to "cafe".
	foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Make converts text into a slug: diacritics folded, lowercased, runs of
// non-alphanumerics collapsed to single hyphens, leading/trailing hyphens
// trimmed. Returns "untitled" when nothing survives.
func Make(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		folded = text
	}

	s := strings.ToLower(folded)
	s = invalidChars.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > MaxLength {
		s = strings.Trim(s[:MaxLength], "-")
	}
	if s == "" {
		return "untitled"
	}
	return s
}

// WithSuffix appends a random 4-character alphanumeric suffix to candidate.
// Used to resolve a slug collision within a scope.
func WithSuffix(candidate string) string {
	return candidate + "-" + randomSuffix()
}

func randomSuffix() string {
	result := make([]byte, SuffixLength)
	alphabetLen := big.NewInt(int64(len(suffixAlphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is
			// broken; fall back to a fixed character rather than panic.
			result[i] = 'x'
			continue
		}
		result[i] = suffixAlphabet[n.Int64()]
	}
	return string(result)
}
