package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/section/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/services/content"
)

type memSiteRepo struct {
	domainSite.Repository
	site *domainSite.Site
}

func (m *memSiteRepo) GetByID(_ context.Context, id uint) (*domainSite.Site, error) {
	if m.site != nil && m.site.ID() == id {
		return m.site, nil
	}
	return nil, nil
}

func (m *memSiteRepo) GetBySID(_ context.Context, sid string) (*domainSite.Site, error) {
	if m.site != nil && m.site.SID() == sid {
		return m.site, nil
	}
	return nil, nil
}

type memPageRepo struct {
	domainPage.Repository
	page *domainPage.Page
}

func (m *memPageRepo) GetByID(_ context.Context, id uint) (*domainPage.Page, error) {
	if m.page != nil && m.page.ID() == id {
		return m.page, nil
	}
	return nil, nil
}

func (m *memPageRepo) GetBySID(_ context.Context, sid string) (*domainPage.Page, error) {
	if m.page != nil && m.page.SID() == sid {
		return m.page, nil
	}
	return nil, nil
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

func (m *memSectionRepo) Update(_ context.Context, _ *domainSection.Section) error {
	return nil
}

func (m *memSectionRepo) GetBySID(_ context.Context, sid string) (*domainSection.Section, error) {
	for _, s := range m.sections {
		if s.SID() == sid && !s.IsDeleted() {
			return s, nil
		}
	}
	return nil, nil
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

func (m *memSectionRepo) CountByPage(ctx context.Context, pageID uint) (int64, error) {
	sections, _ := m.ListByPage(ctx, pageID)
	return int64(len(sections)), nil
}

func (m *memSectionRepo) UpdatePositions(_ context.Context, pageID uint, positions map[uint]int) error {
	for sectionID, pos := range positions {
		for _, s := range m.sections {
			if s.ID() == sectionID && s.PageID() == pageID && !s.IsDeleted() {
				if err := s.SetPosition(pos); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (m *memSectionRepo) SoftDelete(_ context.Context, _ *domainSection.Section) error {
	return nil
}

type memUserRepo struct {
	domainUser.Repository
	user *domainUser.User
}

func (m *memUserRepo) GetByID(_ context.Context, id uint) (*domainUser.User, error) {
	if m.user != nil && m.user.ID() == id {
		return m.user, nil
	}
	return nil, nil
}

type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type spyTxManager struct{ calls *int }

func (m spyTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	*m.calls++
	return fn(ctx)
}

type sectionFixture struct {
	sectionRepo *memSectionRepo
	userRepo    *memUserRepo
	resolver    *access.Resolver
	page        *domainPage.Page
	owner       Actor
}

func newSectionFixture(t *testing.T, maxSections int) *sectionFixture {
	t.Helper()

	addr, err := vo.NewEmail("owner@example.com")
	require.NoError(t, err)
	owner, err := domainUser.NewUser(addr, "$2a$12$hash", domainUser.PlanLimits{
		MaxSites:           10,
		MaxPagesPerSite:    50,
		MaxSectionsPerPage: maxSections,
	}, id.NewUserID)
	require.NoError(t, err)
	owner.SetID(1)

	s, err := domainSite.NewSite(1, "Demo", "demo", "", id.NewSiteID)
	require.NoError(t, err)
	s.SetID(1)

	p, err := domainPage.NewPage(1, "Home", "home", domainPage.TypeHome, 0, id.NewPageID)
	require.NoError(t, err)
	p.SetID(1)

	sectionRepo := &memSectionRepo{}
	userRepo := &memUserRepo{user: owner}

	return &sectionFixture{
		sectionRepo: sectionRepo,
		userRepo:    userRepo,
		resolver:    access.NewResolver(&memSiteRepo{site: s}, &memPageRepo{page: p}, sectionRepo),
		page:        p,
		owner:       Actor{UserID: 1, Role: authorization.RoleUser},
	}
}

func TestCreateSection_DefaultContentAndPosition(t *testing.T) {
	fx := newSectionFixture(t, 10)
	uc := NewCreateSectionUseCase(fx.resolver, fx.sectionRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	hero, err := uc.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Title: "Hero", Type: "hero"})
	require.NoError(t, err)
	assert.Equal(t, 0, hero.Position)
	assert.True(t, hero.IsActive)
	assert.Equal(t, "Welcome", hero.Content["heading"])
	assert.Equal(t, "Get Started", hero.Content["buttonText"])

	pricing, err := uc.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "pricing"})
	require.NoError(t, err)
	assert.Equal(t, 1, pricing.Position)
	assert.Equal(t, "Pricing", pricing.Content["heading"])
}

func TestCreateSection_QuotaAndInvalidType(t *testing.T) {
	fx := newSectionFixture(t, 1)
	uc := NewCreateSectionUseCase(fx.resolver, fx.sectionRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	_, err := uc.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "hero"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "cta"})
	assert.True(t, errors.IsForbiddenError(err))

	fx2 := newSectionFixture(t, 10)
	uc2 := NewCreateSectionUseCase(fx2.resolver, fx2.sectionRepo, fx2.userRepo, logger.NewNop())
	_, err = uc2.Execute(ctx, fx2.owner, fx2.page.SID(), dto.CreateSectionRequest{Type: "bogus"})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateSection_SanitizesContent(t *testing.T) {
	fx := newSectionFixture(t, 10)
	create := NewCreateSectionUseCase(fx.resolver, fx.sectionRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	created, err := create.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "content"})
	require.NoError(t, err)

	uc := NewUpdateSectionUseCase(fx.resolver, fx.sectionRepo, content.NewService(), logger.NewNop())
	updated, err := uc.Execute(ctx, fx.owner, created.ID, dto.UpdateSectionRequest{
		Content: map[string]interface{}{
			"body": `<p>hello</p><script>alert("xss")</script>`,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", updated.Content["body"])
}

func TestUpdateSection_ToggleActiveAndRetitle(t *testing.T) {
	fx := newSectionFixture(t, 10)
	create := NewCreateSectionUseCase(fx.resolver, fx.sectionRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	created, err := create.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Title: "Old", Type: "cta"})
	require.NoError(t, err)

	uc := NewUpdateSectionUseCase(fx.resolver, fx.sectionRepo, content.NewService(), logger.NewNop())
	inactive := false
	title := "New"
	updated, err := uc.Execute(ctx, fx.owner, created.ID, dto.UpdateSectionRequest{
		Title:    &title,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.False(t, updated.IsActive)
}

func TestDeleteSection_LastSectionRejected(t *testing.T) {
	fx := newSectionFixture(t, 10)
	create := NewCreateSectionUseCase(fx.resolver, fx.sectionRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	only, err := create.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "hero"})
	require.NoError(t, err)

	var txCalls int
	uc := NewDeleteSectionUseCase(fx.resolver, fx.sectionRepo, spyTxManager{calls: &txCalls}, logger.NewNop())
	err = uc.Execute(ctx, fx.owner, only.ID)
	assert.True(t, errors.IsConflictError(err))

	second, err := create.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "cta"})
	require.NoError(t, err)
	require.NoError(t, uc.Execute(ctx, fx.owner, second.ID))

	// both attempts ran the count and the delete under one transaction
	assert.Equal(t, 2, txCalls)

	remaining, err := fx.sectionRepo.ListByPage(ctx, fx.page.ID())
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestReorderSections(t *testing.T) {
	fx := newSectionFixture(t, 10)
	create := NewCreateSectionUseCase(fx.resolver, fx.sectionRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	a, err := create.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "hero"})
	require.NoError(t, err)
	b, err := create.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "features"})
	require.NoError(t, err)

	uc := NewReorderSectionsUseCase(fx.resolver, fx.sectionRepo, passTxManager{}, logger.NewNop())

	err = uc.Execute(ctx, fx.owner, dto.ReorderSectionsRequest{
		PageID: fx.page.SID(), SectionIDs: []string{b.ID}})
	assert.True(t, errors.IsValidationError(err))

	require.NoError(t, uc.Execute(ctx, fx.owner, dto.ReorderSectionsRequest{
		PageID: fx.page.SID(), SectionIDs: []string{b.ID, a.ID}}))

	positions := func() map[domainSection.Type]int {
		sections, err := fx.sectionRepo.ListByPage(ctx, fx.page.ID())
		require.NoError(t, err)
		byType := map[domainSection.Type]int{}
		for _, s := range sections {
			byType[s.SectionType()] = s.Position()
		}
		return byType
	}

	byType := positions()
	assert.Equal(t, 0, byType[domainSection.TypeFeatures])
	assert.Equal(t, 1, byType[domainSection.TypeHero])

	// applying the same order again changes nothing
	require.NoError(t, uc.Execute(ctx, fx.owner, dto.ReorderSectionsRequest{
		PageID: fx.page.SID(), SectionIDs: []string{b.ID, a.ID}}))
	assert.Equal(t, byType, positions())
}

func TestSectionAccess_StrangerForbidden(t *testing.T) {
	fx := newSectionFixture(t, 10)
	create := NewCreateSectionUseCase(fx.resolver, fx.sectionRepo, fx.userRepo, logger.NewNop())
	ctx := context.Background()

	created, err := create.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "hero"})
	require.NoError(t, err)

	stranger := Actor{UserID: 42, Role: authorization.RoleUser}
	get := NewGetSectionUseCase(fx.resolver, content.NewService(), logger.NewNop())
	_, err = get.Execute(ctx, stranger, created.ID)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetSection_RendersContentBody(t *testing.T) {
	fx := newSectionFixture(t, 10)
	ctx := context.Background()

	create := NewCreateSectionUseCase(fx.resolver, fx.sectionRepo, fx.userRepo, logger.NewNop())
	created, err := create.Execute(ctx, fx.owner, fx.page.SID(), dto.CreateSectionRequest{Type: "content"})
	require.NoError(t, err)

	update := NewUpdateSectionUseCase(fx.resolver, fx.sectionRepo, content.NewService(), logger.NewNop())
	_, err = update.Execute(ctx, fx.owner, created.ID, dto.UpdateSectionRequest{
		Content: map[string]interface{}{"body": "# Hello\n\nsome *markdown*"},
	})
	require.NoError(t, err)

	get := NewGetSectionUseCase(fx.resolver, content.NewService(), logger.NewNop())
	got, err := get.Execute(ctx, fx.owner, created.ID)
	require.NoError(t, err)

	rendered, ok := got.Content["body_html"].(string)
	require.True(t, ok)
	assert.Contains(t, rendered, "<h1")
	assert.Contains(t, rendered, "<em>markdown</em>")

	// the rendered field is response-only, the stored blob keeps raw markdown
	stored, err := fx.sectionRepo.GetBySID(ctx, created.ID)
	require.NoError(t, err)
	_, persisted := stored.Content()["body_html"]
	assert.False(t, persisted)
}
