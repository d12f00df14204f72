package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webloom-dev/webloom/internal/shared/id"
)

func newTestPage(t *testing.T) *Page {
	t.Helper()
	p, err := NewPage(1, "About Us", "about-us", TypeAbout, 0, id.NewPageID)
	require.NoError(t, err)
	return p
}

func TestNewPage(t *testing.T) {
	p := newTestPage(t)

	assert.NotEmpty(t, p.SID())
	assert.Equal(t, uint(1), p.SiteID())
	assert.Equal(t, "About Us", p.Title())
	assert.Equal(t, "about-us", p.Slug())
	assert.Equal(t, StatusDraft, p.Status())
	assert.Equal(t, TypeAbout, p.PageType())
	assert.False(t, p.IsHomepage())
	assert.Equal(t, 0, p.Position())
	assert.Equal(t, 1, p.Version())
}

func TestNewPage_Invalid(t *testing.T) {
	_, err := NewPage(0, "T", "t", TypePage, 0, id.NewPageID)
	assert.Error(t, err)

	_, err = NewPage(1, "", "t", TypePage, 0, id.NewPageID)
	assert.Error(t, err)

	_, err = NewPage(1, "T", "", TypePage, 0, id.NewPageID)
	assert.Error(t, err)

	_, err = NewPage(1, "T", "t", Type("bogus"), 0, id.NewPageID)
	assert.Error(t, err)

	_, err = NewPage(1, "T", "t", TypePage, -1, id.NewPageID)
	assert.Error(t, err)
}

func TestPage_HomepageFlag(t *testing.T) {
	p := newTestPage(t)
	v := p.Version()

	p.MarkHomepage()
	assert.True(t, p.IsHomepage())
	assert.Greater(t, p.Version(), v)

	// marking twice does not bump the version again
	v = p.Version()
	p.MarkHomepage()
	assert.Equal(t, v, p.Version())

	p.UnmarkHomepage()
	assert.False(t, p.IsHomepage())
}

func TestPage_Retitle(t *testing.T) {
	p := newTestPage(t)

	changed, err := p.Retitle("About Us")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = p.Retitle("Our Story")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Our Story", p.Title())

	_, err = p.Retitle("")
	assert.Error(t, err)
}

func TestPage_SoftDeleteClearsHomepage(t *testing.T) {
	p := newTestPage(t)
	p.MarkHomepage()

	p.SoftDelete(time.Now().UTC())
	assert.True(t, p.IsDeleted())
	assert.False(t, p.IsHomepage())
}

func TestNewPageFromSnapshot(t *testing.T) {
	src := newTestPage(t)
	src.SetID(7)
	src.MarkHomepage()
	src.MergeSettings(map[string]interface{}{"layout": "wide"})

	dup, err := NewPageFromSnapshot(src, src.SiteID(), "About Us (copy)", "about-us-x9k2", 3, id.NewPageID)
	require.NoError(t, err)

	assert.Zero(t, dup.ID())
	assert.NotEqual(t, src.SID(), dup.SID())
	assert.False(t, dup.IsHomepage())
	assert.Equal(t, 3, dup.Position())
	assert.Equal(t, StatusDraft, dup.Status())
	assert.Equal(t, "wide", dup.Settings()["layout"])

	dup.MergeSettings(map[string]interface{}{"layout": "narrow"})
	assert.Equal(t, "wide", src.Settings()["layout"])
}
