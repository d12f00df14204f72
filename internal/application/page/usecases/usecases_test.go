package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/page/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

type memSiteRepo struct {
	domainSite.Repository
	sites map[uint]*domainSite.Site
}

func (m *memSiteRepo) GetByID(_ context.Context, id uint) (*domainSite.Site, error) {
	s := m.sites[id]
	if s == nil || s.IsDeleted() {
		return nil, nil
	}
	return s, nil
}

func (m *memSiteRepo) GetBySID(_ context.Context, sid string) (*domainSite.Site, error) {
	for _, s := range m.sites {
		if s.SID() == sid && !s.IsDeleted() {
			return s, nil
		}
	}
	return nil, nil
}

type memPageRepo struct {
	domainPage.Repository
	pages  []*domainPage.Page
	nextID uint
}

func (m *memPageRepo) Create(_ context.Context, p *domainPage.Page) error {
	for _, existing := range m.pages {
		if existing.SiteID() == p.SiteID() && existing.Slug() == p.Slug() && !existing.IsDeleted() {
			return errors.ErrDuplicateEntry
		}
	}
	m.nextID++
	p.SetID(m.nextID)
	m.pages = append(m.pages, p)
	return nil
}

func (m *memPageRepo) Update(_ context.Context, _ *domainPage.Page) error {
	return nil
}

func (m *memPageRepo) GetByID(_ context.Context, id uint) (*domainPage.Page, error) {
	for _, p := range m.pages {
		if p.ID() == id && !p.IsDeleted() {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPageRepo) GetBySID(_ context.Context, sid string) (*domainPage.Page, error) {
	for _, p := range m.pages {
		if p.SID() == sid && !p.IsDeleted() {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPageRepo) ListBySite(_ context.Context, siteID uint) ([]*domainPage.Page, error) {
	var out []*domainPage.Page
	for _, p := range m.pages {
		if p.SiteID() == siteID && !p.IsDeleted() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPageRepo) CountBySite(ctx context.Context, siteID uint) (int64, error) {
	pages, _ := m.ListBySite(ctx, siteID)
	return int64(len(pages)), nil
}

func (m *memPageRepo) ExistsBySlug(_ context.Context, siteID uint, slug string, excludeID uint) (bool, error) {
	for _, p := range m.pages {
		if p.SiteID() == siteID && p.Slug() == slug && p.ID() != excludeID && !p.IsDeleted() {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPageRepo) GetHomepage(_ context.Context, siteID uint) (*domainPage.Page, error) {
	for _, p := range m.pages {
		if p.SiteID() == siteID && p.IsHomepage() && !p.IsDeleted() {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPageRepo) UpdatePositions(_ context.Context, siteID uint, positions map[uint]int) error {
	for pageID, pos := range positions {
		found := false
		for _, p := range m.pages {
			if p.ID() == pageID && p.SiteID() == siteID && !p.IsDeleted() {
				if err := p.SetPosition(pos); err != nil {
					return err
				}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("page %d does not belong to site %d", pageID, siteID)
		}
	}
	return nil
}

func (m *memPageRepo) SoftDelete(_ context.Context, _ *domainPage.Page) error {
	return nil
}

type memSectionRepo struct {
	domainSection.Repository
	sections []*domainSection.Section
	nextID   uint
}

func (m *memSectionRepo) Create(_ context.Context, s *domainSection.Section) error {
	m.nextID++
	s.SetID(m.nextID)
	m.sections = append(m.sections, s)
	return nil
}

func (m *memSectionRepo) ListByPage(_ context.Context, pageID uint) ([]*domainSection.Section, error) {
	var out []*domainSection.Section
	for _, s := range m.sections {
		if s.PageID() == pageID && !s.IsDeleted() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSectionRepo) SoftDeleteByPage(_ context.Context, pageID uint) error {
	return nil
}

type memUserRepo struct {
	domainUser.Repository
	users map[uint]*domainUser.User
}

func (m *memUserRepo) GetByID(_ context.Context, id uint) (*domainUser.User, error) {
	return m.users[id], nil
}

type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type pageFixture struct {
	siteRepo    *memSiteRepo
	pageRepo    *memPageRepo
	sectionRepo *memSectionRepo
	userRepo    *memUserRepo
	resolver    *access.Resolver
	site        *domainSite.Site
	owner       Actor
}

func newPageFixture(t *testing.T, maxPages int) *pageFixture {
	t.Helper()

	addr, err := vo.NewEmail("owner@example.com")
	require.NoError(t, err)
	owner, err := domainUser.NewUser(addr, "$2a$12$hash", domainUser.PlanLimits{
		MaxSites:           10,
		MaxPagesPerSite:    maxPages,
		MaxSectionsPerPage: 50,
	}, id.NewUserID)
	require.NoError(t, err)
	owner.SetID(1)

	s, err := domainSite.NewSite(1, "Demo", "demo", "", id.NewSiteID)
	require.NoError(t, err)
	s.SetID(1)

	siteRepo := &memSiteRepo{sites: map[uint]*domainSite.Site{1: s}}
	pageRepo := &memPageRepo{}
	sectionRepo := &memSectionRepo{}
	userRepo := &memUserRepo{users: map[uint]*domainUser.User{1: owner}}

	return &pageFixture{
		siteRepo:    siteRepo,
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		userRepo:    userRepo,
		resolver:    access.NewResolver(siteRepo, pageRepo, sectionRepo),
		site:        s,
		owner:       Actor{UserID: 1, Role: authorization.RoleUser},
	}
}

func TestCreatePage_FirstPageBecomesHomepage(t *testing.T) {
	fx := newPageFixture(t, 10)
	uc := NewCreatePageUseCase(fx.resolver, fx.pageRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	first, err := uc.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Home", Type: "home"})
	require.NoError(t, err)
	assert.True(t, first.IsHomepage)
	assert.Equal(t, 0, first.Position)

	second, err := uc.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "About"})
	require.NoError(t, err)
	assert.False(t, second.IsHomepage)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, "page", second.Type)
}

func TestCreatePage_QuotaAndSlugCollision(t *testing.T) {
	fx := newPageFixture(t, 2)
	uc := NewCreatePageUseCase(fx.resolver, fx.pageRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	first, err := uc.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Services"})
	require.NoError(t, err)

	// same title within the site gets a suffixed slug
	second, err := uc.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Services"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "services-")

	_, err = uc.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Overflow"})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdatePage_TitleChangeRegeneratesSlug(t *testing.T) {
	fx := newPageFixture(t, 10)
	create := NewCreatePageUseCase(fx.resolver, fx.pageRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	created, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Old Title"})
	require.NoError(t, err)

	uc := NewUpdatePageUseCase(fx.resolver, fx.pageRepo, logger.NewNop())
	newTitle := "New Title"
	updated, err := uc.Execute(ctx, fx.owner, created.ID, dto.UpdatePageRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)

	// unchanged title keeps the slug
	same, err := uc.Execute(ctx, fx.owner, created.ID, dto.UpdatePageRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "new-title", same.Slug)
}

func TestDeletePage_LastPageRejected(t *testing.T) {
	fx := newPageFixture(t, 10)
	create := NewCreatePageUseCase(fx.resolver, fx.pageRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	only, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Only"})
	require.NoError(t, err)

	uc := NewDeletePageUseCase(fx.resolver, fx.pageRepo, fx.sectionRepo, passTxManager{}, logger.NewNop())
	err = uc.Execute(ctx, fx.owner, only.ID)
	assert.True(t, errors.IsConflictError(err))
}

func TestDeletePage_HomepagePromotion(t *testing.T) {
	fx := newPageFixture(t, 10)
	create := NewCreatePageUseCase(fx.resolver, fx.pageRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	home, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Home"})
	require.NoError(t, err)
	require.True(t, home.IsHomepage)

	about, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "About"})
	require.NoError(t, err)
	contact, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Contact"})
	require.NoError(t, err)

	uc := NewDeletePageUseCase(fx.resolver, fx.pageRepo, fx.sectionRepo, passTxManager{}, logger.NewNop())
	require.NoError(t, uc.Execute(ctx, fx.owner, home.ID))

	// the lowest-position survivor takes over as homepage
	promoted, err := fx.pageRepo.GetHomepage(ctx, fx.site.ID())
	require.NoError(t, err)
	require.NotNil(t, promoted)
	assert.Equal(t, about.ID, promoted.SID())
	assert.NotEqual(t, contact.ID, promoted.SID())
}

func TestDuplicatePage_CopiesSectionsNeverHomepage(t *testing.T) {
	fx := newPageFixture(t, 10)
	create := NewCreatePageUseCase(fx.resolver, fx.pageRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	home, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Home"})
	require.NoError(t, err)

	src, err := fx.pageRepo.GetBySID(ctx, home.ID)
	require.NoError(t, err)
	hero, err := domainSection.NewSection(src.ID(), "Hero", domainSection.TypeHero, 0, id.NewSectionID)
	require.NoError(t, err)
	require.NoError(t, fx.sectionRepo.Create(ctx, hero))

	uc := NewDuplicatePageUseCase(
		fx.resolver, fx.pageRepo, fx.sectionRepo, fx.userRepo, passTxManager{}, logger.NewNop())
	dup, err := uc.Execute(ctx, fx.owner, home.ID, dto.DuplicatePageRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Home (copy)", dup.Title)
	assert.False(t, dup.IsHomepage)
	assert.Equal(t, 1, dup.Position)

	dupEntity, err := fx.pageRepo.GetBySID(ctx, dup.ID)
	require.NoError(t, err)
	copied, err := fx.sectionRepo.ListByPage(ctx, dupEntity.ID())
	require.NoError(t, err)
	require.Len(t, copied, 1)
	assert.Equal(t, domainSection.TypeHero, copied[0].SectionType())
	assert.NotEqual(t, hero.SID(), copied[0].SID())
}

func TestReorderPages(t *testing.T) {
	fx := newPageFixture(t, 10)
	create := NewCreatePageUseCase(fx.resolver, fx.pageRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	a, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "A"})
	require.NoError(t, err)
	b, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "B"})
	require.NoError(t, err)
	c, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "C"})
	require.NoError(t, err)

	uc := NewReorderPagesUseCase(fx.resolver, fx.pageRepo, passTxManager{}, logger.NewNop())

	// incomplete permutation is rejected
	err = uc.Execute(ctx, fx.owner, dto.ReorderPagesRequest{
		SiteID: fx.site.SID(), PageIDs: []string{c.ID, a.ID}})
	assert.True(t, errors.IsValidationError(err))

	// duplicate entry is rejected
	err = uc.Execute(ctx, fx.owner, dto.ReorderPagesRequest{
		SiteID: fx.site.SID(), PageIDs: []string{c.ID, a.ID, a.ID}})
	assert.True(t, errors.IsValidationError(err))

	// unknown entry is rejected
	err = uc.Execute(ctx, fx.owner, dto.ReorderPagesRequest{
		SiteID: fx.site.SID(), PageIDs: []string{c.ID, a.ID, "pg_missing"}})
	assert.True(t, errors.IsValidationError(err))

	require.NoError(t, uc.Execute(ctx, fx.owner, dto.ReorderPagesRequest{
		SiteID: fx.site.SID(), PageIDs: []string{c.ID, a.ID, b.ID}}))

	positions := func() map[string]int {
		pages, err := fx.pageRepo.ListBySite(ctx, fx.site.ID())
		require.NoError(t, err)
		byTitle := map[string]int{}
		for _, p := range pages {
			byTitle[p.Title()] = p.Position()
		}
		return byTitle
	}

	byTitle := positions()
	assert.Equal(t, 0, byTitle["C"])
	assert.Equal(t, 1, byTitle["A"])
	assert.Equal(t, 2, byTitle["B"])

	// applying the same order again changes nothing
	require.NoError(t, uc.Execute(ctx, fx.owner, dto.ReorderPagesRequest{
		SiteID: fx.site.SID(), PageIDs: []string{c.ID, a.ID, b.ID}}))
	assert.Equal(t, byTitle, positions())
}

func TestSetHomepage_SwapsFlag(t *testing.T) {
	fx := newPageFixture(t, 10)
	create := NewCreatePageUseCase(fx.resolver, fx.pageRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	home, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Home"})
	require.NoError(t, err)
	about, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "About"})
	require.NoError(t, err)

	uc := NewSetHomepageUseCase(fx.resolver, fx.pageRepo, passTxManager{}, logger.NewNop())
	updated, err := uc.Execute(ctx, fx.owner, about.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsHomepage)

	old, err := fx.pageRepo.GetBySID(ctx, home.ID)
	require.NoError(t, err)
	assert.False(t, old.IsHomepage())

	// setting the current homepage again is a no-op
	again, err := uc.Execute(ctx, fx.owner, about.ID)
	require.NoError(t, err)
	assert.True(t, again.IsHomepage)
}

func TestPageAccess_StrangerForbidden(t *testing.T) {
	fx := newPageFixture(t, 10)
	create := NewCreatePageUseCase(fx.resolver, fx.pageRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	created, err := create.Execute(ctx, fx.owner, fx.site.SID(), dto.CreatePageRequest{Title: "Private"})
	require.NoError(t, err)

	stranger := Actor{UserID: 99, Role: authorization.RoleUser}
	get := NewGetPageUseCase(fx.resolver, logger.NewNop())
	_, err = get.Execute(ctx, stranger, created.ID)
	assert.True(t, errors.IsForbiddenError(err))
}
