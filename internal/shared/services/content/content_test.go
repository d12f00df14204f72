package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTML("# Heading\n\nsome **bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestSanitize_StripsScript(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<p>hi</p><script>alert(1)</script>`)
	assert.Contains(t, out, "<p>hi</p>")
	assert.NotContains(t, out, "script")
}

func TestSanitizeBlob(t *testing.T) {
	svc := NewService()

	blob := map[string]interface{}{
		"heading": `Welcome<img src=x onerror="alert(1)">`,
		"columns": 3,
	}
	got := svc.SanitizeBlob(blob)
	assert.NotContains(t, got["heading"], "onerror")
	assert.Equal(t, 3, got["columns"])

	assert.Nil(t, svc.SanitizeBlob(nil))
}
