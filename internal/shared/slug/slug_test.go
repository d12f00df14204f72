package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple title", "My Site", "my-site"},
		{"whitespace runs", "My   Fancy\tSite", "my-fancy-site"},
		{"special characters", "Hello, World! & Friends", "hello-world-friends"},
		{"leading and trailing junk", "  --Launch Day--  ", "launch-day"},
		{"diacritics folded", "Café Déjà Vu", "cafe-deja-vu"},
		{"already a slug", "about-us", "about-us"},
		{"uppercase", "PRICING", "pricing"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"empty input", "", "untitled"},
		{"only junk", "!!!", "untitled"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestMake_Deterministic(t *testing.T) {
	assert.Equal(t, Make("Demo Page"), Make("Demo Page"))
}

func TestMake_MaxLength(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "verylongword "
	}
	got := Make(long)
	assert.LessOrEqual(t, len(got), MaxLength)
	assert.NotEqual(t, "-", got[len(got)-1:])
}

func TestWithSuffix(t *testing.T) {
	pattern := regexp.MustCompile(`^my-site-[a-z0-9]{4}$`)

	got := WithSuffix("my-site")
	assert.Regexp(t, pattern, got)

	// suffixes are random, two calls should (practically) never collide
	other := WithSuffix("my-site")
	assert.Regexp(t, pattern, other)
	assert.NotEqual(t, got, other)
}
