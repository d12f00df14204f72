package section

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webloom-dev/webloom/internal/shared/id"
)

func newTestSection(t *testing.T, st Type) *Section {
	t.Helper()
	s, err := NewSection(1, "Block", st, 0, id.NewSectionID)
	require.NoError(t, err)
	return s
}

func TestNewSection(t *testing.T) {
	s := newTestSection(t, TypeHero)

	assert.NotEmpty(t, s.SID())
	assert.Equal(t, uint(1), s.PageID())
	assert.Equal(t, TypeHero, s.SectionType())
	assert.True(t, s.IsActive())
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, "Welcome", s.Content()["heading"])
}

func TestNewSection_Invalid(t *testing.T) {
	_, err := NewSection(0, "Block", TypeHero, 0, id.NewSectionID)
	assert.Error(t, err)

	_, err = NewSection(1, "Block", Type("bogus"), 0, id.NewSectionID)
	assert.Error(t, err)

	_, err = NewSection(1, "Block", TypeHero, -2, id.NewSectionID)
	assert.Error(t, err)
}

func TestType_DefaultContent(t *testing.T) {
	assert.Contains(t, TypePricing.DefaultContent(), "plans")
	assert.Contains(t, TypeGallery.DefaultContent(), "images")
	assert.Contains(t, TypeContent.DefaultContent(), "body")
}

func TestSection_MergeContent(t *testing.T) {
	s := newTestSection(t, TypeHero)

	s.MergeContent(map[string]interface{}{"heading": "Hello"})
	assert.Equal(t, "Hello", s.Content()["heading"])
	// untouched default keys survive the merge
	assert.Equal(t, "Get Started", s.Content()["buttonText"])
}

func TestSection_SetActive(t *testing.T) {
	s := newTestSection(t, TypeCTA)
	v := s.Version()

	s.SetActive(true) // no-op
	assert.Equal(t, v, s.Version())

	s.SetActive(false)
	assert.False(t, s.IsActive())
	assert.Greater(t, s.Version(), v)
}

func TestNewSectionFromSnapshot(t *testing.T) {
	src := newTestSection(t, TypeFeatures)
	src.SetID(11)
	src.SetActive(false)
	src.MergeContent(map[string]interface{}{"heading": "Why us"})

	dup, err := NewSectionFromSnapshot(src, 2, 5, id.NewSectionID)
	require.NoError(t, err)

	assert.Zero(t, dup.ID())
	assert.NotEqual(t, src.SID(), dup.SID())
	assert.Equal(t, uint(2), dup.PageID())
	assert.Equal(t, 5, dup.Position())
	assert.False(t, dup.IsActive())
	assert.Equal(t, "Why us", dup.Content()["heading"])

	dup.MergeContent(map[string]interface{}{"heading": "changed"})
	assert.Equal(t, "Why us", src.Content()["heading"])
}

func TestSection_SoftDelete(t *testing.T) {
	s := newTestSection(t, TypeContent)
	s.SoftDelete(time.Now().UTC())
	assert.True(t, s.IsDeleted())
}
