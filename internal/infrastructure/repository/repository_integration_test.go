package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/webloom-dev/webloom/internal/domain/credits"
	"github.com/webloom-dev/webloom/internal/domain/page"
	"github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/id"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(
		&models.UserModel{},
		&models.SiteModel{},
		&models.PageModel{},
		&models.SectionModel{},
		&models.PaymentModel{},
		&models.CreditLedgerModel{},
	))

	return database
}

func createTestSite(t *testing.T, repo *SiteRepository, slug string) *site.Site {
	t.Helper()
	s, err := site.NewSite(1, "Demo", slug, "landing", id.NewSiteID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestSiteRepository_CRUD(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSiteRepository(database)
	ctx := context.Background()

	s := createTestSite(t, repo, "demo")
	assert.NotZero(t, s.ID())

	found, err := repo.GetBySID(ctx, s.SID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "demo", found.Slug())

	exists, err := repo.ExistsBySlug(ctx, "demo", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// excluding the site itself reports no conflict
	exists, err = repo.ExistsBySlug(ctx, "demo", s.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	count, err := repo.CountByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSiteRepository_SoftDeleteHidesRows(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSiteRepository(database)
	ctx := context.Background()

	s := createTestSite(t, repo, "gone")
	s.SoftDelete(biztime.NowUTC())
	require.NoError(t, repo.SoftDelete(ctx, s))

	found, err := repo.GetBySID(ctx, s.SID())
	require.NoError(t, err)
	assert.Nil(t, found)

	// the slug is free again for new sites
	exists, err := repo.ExistsBySlug(ctx, "gone", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSiteRepository_SlugReusableAfterSoftDelete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSiteRepository(database)
	ctx := context.Background()

	first := createTestSite(t, repo, "reused")
	first.SoftDelete(biztime.NowUTC())
	require.NoError(t, repo.SoftDelete(ctx, first))

	// the tombstone retired its slug, so the unique index accepts a new row
	second := createTestSite(t, repo, "reused")

	found, err := repo.GetBySID(ctx, second.SID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "reused", found.Slug())
}

func TestPageRepository_SlugReusableAfterSoftDelete(t *testing.T) {
	database := setupTestDB(t)
	siteRepo := NewSiteRepository(database)
	pageRepo := NewPageRepository(database)
	ctx := context.Background()

	s := createTestSite(t, siteRepo, "recycle")

	p, err := page.NewPage(s.ID(), "About", "about", page.TypeAbout, 0, id.NewPageID)
	require.NoError(t, err)
	require.NoError(t, pageRepo.Create(ctx, p))

	p.SoftDelete(biztime.NowUTC())
	require.NoError(t, pageRepo.SoftDelete(ctx, p))

	again, err := page.NewPage(s.ID(), "About", "about", page.TypeAbout, 0, id.NewPageID)
	require.NoError(t, err)
	require.NoError(t, pageRepo.Create(ctx, again))

	// the bulk site cascade retires slugs the same way
	require.NoError(t, pageRepo.SoftDeleteBySite(ctx, s.ID()))

	p2, err := page.NewPage(s.ID(), "About", "about", page.TypeAbout, 0, id.NewPageID)
	require.NoError(t, err)
	require.NoError(t, pageRepo.Create(ctx, p2))
}

func TestPageRepository_OrderingAndHomepage(t *testing.T) {
	database := setupTestDB(t)
	siteRepo := NewSiteRepository(database)
	pageRepo := NewPageRepository(database)
	ctx := context.Background()

	s := createTestSite(t, siteRepo, "paged")

	var pages []*page.Page
	for i, slug := range []string{"home", "about", "contact"} {
		p, err := page.NewPage(s.ID(), "Page "+slug, slug, page.TypePage, i, id.NewPageID)
		require.NoError(t, err)
		if i == 0 {
			p.MarkHomepage()
		}
		require.NoError(t, pageRepo.Create(ctx, p))
		pages = append(pages, p)
	}

	listed, err := pageRepo.ListBySite(ctx, s.ID())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "home", listed[0].Slug())

	hp, err := pageRepo.GetHomepage(ctx, s.ID())
	require.NoError(t, err)
	require.NotNil(t, hp)
	assert.Equal(t, pages[0].SID(), hp.SID())

	// reverse the order and confirm listing follows positions
	require.NoError(t, pageRepo.UpdatePositions(ctx, s.ID(), map[uint]int{
		pages[0].ID(): 2,
		pages[1].ID(): 1,
		pages[2].ID(): 0,
	}))

	listed, err = pageRepo.ListBySite(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, "contact", listed[0].Slug())
	assert.Equal(t, "home", listed[2].Slug())
}

func TestPageRepository_UpdatePositionsRejectsForeignPage(t *testing.T) {
	database := setupTestDB(t)
	siteRepo := NewSiteRepository(database)
	pageRepo := NewPageRepository(database)
	ctx := context.Background()

	s1 := createTestSite(t, siteRepo, "site-a")
	s2 := createTestSite(t, siteRepo, "site-b")

	p, err := page.NewPage(s2.ID(), "Other", "other", page.TypePage, 0, id.NewPageID)
	require.NoError(t, err)
	require.NoError(t, pageRepo.Create(ctx, p))

	err = pageRepo.UpdatePositions(ctx, s1.ID(), map[uint]int{p.ID(): 0})
	assert.Error(t, err)
}

func TestPageRepository_SlugScopedToSite(t *testing.T) {
	database := setupTestDB(t)
	siteRepo := NewSiteRepository(database)
	pageRepo := NewPageRepository(database)
	ctx := context.Background()

	s1 := createTestSite(t, siteRepo, "first")
	s2 := createTestSite(t, siteRepo, "second")

	p, err := page.NewPage(s1.ID(), "About", "about", page.TypeAbout, 0, id.NewPageID)
	require.NoError(t, err)
	require.NoError(t, pageRepo.Create(ctx, p))

	exists, err := pageRepo.ExistsBySlug(ctx, s1.ID(), "about", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// the same slug is free on another site
	exists, err = pageRepo.ExistsBySlug(ctx, s2.ID(), "about", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSectionRepository_CountBySiteSkipsDeletedPages(t *testing.T) {
	database := setupTestDB(t)
	siteRepo := NewSiteRepository(database)
	pageRepo := NewPageRepository(database)
	sectionRepo := NewSectionRepository(database)
	ctx := context.Background()

	s := createTestSite(t, siteRepo, "stats")

	home, err := page.NewPage(s.ID(), "Home", "home", page.TypeHome, 0, id.NewPageID)
	require.NoError(t, err)
	require.NoError(t, pageRepo.Create(ctx, home))
	about, err := page.NewPage(s.ID(), "About", "about", page.TypeAbout, 1, id.NewPageID)
	require.NoError(t, err)
	require.NoError(t, pageRepo.Create(ctx, about))

	for i, pg := range []*page.Page{home, home, about} {
		sec, err := section.NewSection(pg.ID(), "Block", section.TypeContent, i, id.NewSectionID)
		require.NoError(t, err)
		require.NoError(t, sectionRepo.Create(ctx, sec))
	}

	count, err := sectionRepo.CountBySite(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// sections hanging off a deleted page drop out of the site total
	about.SoftDelete(biztime.NowUTC())
	require.NoError(t, pageRepo.SoftDelete(ctx, about))

	count, err = sectionRepo.CountBySite(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCreditLedgerRepository_ConsumeAtomic(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCreditLedgerRepository(database)
	ctx := context.Background()

	l, err := credits.NewLedger(1, 10, credits.ResetNever)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, l))

	ok, err := repo.ConsumeAtomic(ctx, 1, 6)
	require.NoError(t, err)
	assert.True(t, ok)

	// balance is 4, an overdraw is refused without changing anything
	ok, err = repo.ConsumeAtomic(ctx, 1, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(4), stored.Remaining())

	require.NoError(t, repo.GrantAtomic(ctx, 1, 20))
	stored, err = repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(24), stored.Remaining())
}

func TestCreditLedgerRepository_GrantUnknownUser(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCreditLedgerRepository(database)

	err := repo.GrantAtomic(context.Background(), 99, 5)
	assert.Error(t, err)
}
