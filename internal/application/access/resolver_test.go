package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webloom-dev/webloom/internal/domain/page"
	"github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
)

type fakeSiteRepo struct {
	site.Repository
	byID  map[uint]*site.Site
	bySID map[string]*site.Site
}

func (f *fakeSiteRepo) GetByID(_ context.Context, id uint) (*site.Site, error) {
	return f.byID[id], nil
}

func (f *fakeSiteRepo) GetBySID(_ context.Context, sid string) (*site.Site, error) {
	return f.bySID[sid], nil
}

type fakePageRepo struct {
	page.Repository
	byID  map[uint]*page.Page
	bySID map[string]*page.Page
}

func (f *fakePageRepo) GetByID(_ context.Context, id uint) (*page.Page, error) {
	return f.byID[id], nil
}

func (f *fakePageRepo) GetBySID(_ context.Context, sid string) (*page.Page, error) {
	return f.bySID[sid], nil
}

type fakeSectionRepo struct {
	section.Repository
	bySID map[string]*section.Section
}

func (f *fakeSectionRepo) GetBySID(_ context.Context, sid string) (*section.Section, error) {
	return f.bySID[sid], nil
}

func buildChain(t *testing.T) (*Resolver, *site.Site, *page.Page, *section.Section) {
	t.Helper()

	s, err := site.NewSite(7, "Demo", "demo", "", id.NewSiteID)
	require.NoError(t, err)
	s.SetID(1)

	p, err := page.NewPage(1, "Home", "home", page.TypeHome, 0, id.NewPageID)
	require.NoError(t, err)
	p.SetID(2)

	sec, err := section.NewSection(2, "Hero", section.TypeHero, 0, id.NewSectionID)
	require.NoError(t, err)
	sec.SetID(3)

	resolver := NewResolver(
		&fakeSiteRepo{byID: map[uint]*site.Site{1: s}, bySID: map[string]*site.Site{s.SID(): s}},
		&fakePageRepo{byID: map[uint]*page.Page{2: p}, bySID: map[string]*page.Page{p.SID(): p}},
		&fakeSectionRepo{bySID: map[string]*section.Section{sec.SID(): sec}},
	)
	return resolver, s, p, sec
}

func TestResolver_OwnerAccess(t *testing.T) {
	resolver, s, p, sec := buildChain(t)
	owner := Actor{UserID: 7, Role: authorization.RoleUser}
	ctx := context.Background()

	got, err := resolver.AuthorizeSite(ctx, owner, s.SID())
	require.NoError(t, err)
	assert.Equal(t, s.SID(), got.SID())

	gotPage, gotSite, err := resolver.AuthorizePage(ctx, owner, p.SID())
	require.NoError(t, err)
	assert.Equal(t, p.SID(), gotPage.SID())
	assert.Equal(t, s.SID(), gotSite.SID())

	gotSec, _, _, err := resolver.AuthorizeSection(ctx, owner, sec.SID())
	require.NoError(t, err)
	assert.Equal(t, sec.SID(), gotSec.SID())
}

func TestResolver_ForeignUserForbidden(t *testing.T) {
	resolver, s, p, sec := buildChain(t)
	stranger := Actor{UserID: 99, Role: authorization.RoleUser}
	ctx := context.Background()

	_, err := resolver.AuthorizeSite(ctx, stranger, s.SID())
	assert.True(t, errors.IsForbiddenError(err))

	_, _, err = resolver.AuthorizePage(ctx, stranger, p.SID())
	assert.True(t, errors.IsForbiddenError(err))

	_, _, _, err = resolver.AuthorizeSection(ctx, stranger, sec.SID())
	assert.True(t, errors.IsForbiddenError(err))
}

func TestResolver_AdminBypassesOwnership(t *testing.T) {
	resolver, s, _, _ := buildChain(t)
	admin := Actor{UserID: 99, Role: authorization.RoleAdmin}

	_, err := resolver.AuthorizeSite(context.Background(), admin, s.SID())
	assert.NoError(t, err)
}

func TestResolver_MissingLinksAreNotFound(t *testing.T) {
	resolver, _, _, _ := buildChain(t)
	owner := Actor{UserID: 7, Role: authorization.RoleUser}
	ctx := context.Background()

	_, err := resolver.AuthorizeSite(ctx, owner, "site_missing")
	assert.True(t, errors.IsNotFoundError(err))

	_, _, err = resolver.AuthorizePage(ctx, owner, "pg_missing")
	assert.True(t, errors.IsNotFoundError(err))

	_, _, _, err = resolver.AuthorizeSection(ctx, owner, "sec_missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolver_BrokenChainIsNotFoundNotForbidden(t *testing.T) {
	// a page whose parent site is soft-deleted must read as not found,
	// even for the owner
	s, err := site.NewSite(7, "Demo", "demo", "", id.NewSiteID)
	require.NoError(t, err)
	s.SetID(1)

	p, err := page.NewPage(1, "Home", "home", page.TypeHome, 0, id.NewPageID)
	require.NoError(t, err)
	p.SetID(2)

	resolver := NewResolver(
		&fakeSiteRepo{byID: map[uint]*site.Site{}, bySID: map[string]*site.Site{}},
		&fakePageRepo{byID: map[uint]*page.Page{2: p}, bySID: map[string]*page.Page{p.SID(): p}},
		&fakeSectionRepo{bySID: map[string]*section.Section{}},
	)

	_, _, err = resolver.AuthorizePage(context.Background(), Actor{UserID: 7, Role: authorization.RoleUser}, p.SID())
	assert.True(t, errors.IsNotFoundError(err))
}
