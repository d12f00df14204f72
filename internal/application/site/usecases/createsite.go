package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/site/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// CreateSiteUseCase creates a draft site for the caller, enforcing the
// per-user site quota and global slug uniqueness. Every new site starts
// with a default Home page so the homepage invariant holds from birth.
type CreateSiteUseCase struct {
	siteRepo  domainSite.Repository
	pageRepo  domainPage.Repository
	userRepo  domainUser.Repository
	txManager db.TxManager
	logger    logger.Interface
}

func NewCreateSiteUseCase(
	siteRepo domainSite.Repository,
	pageRepo domainPage.Repository,
	userRepo domainUser.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *CreateSiteUseCase {
	return &CreateSiteUseCase{
		siteRepo:  siteRepo,
		pageRepo:  pageRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CreateSiteUseCase) Execute(ctx context.Context, actor Actor, request dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	uc.logger.Infow("executing create site use case", "user_id", actor.UserID, "name", request.Name)

	owner, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	count, err := uc.siteRepo.CountByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sites: %w", err)
	}
	if count >= int64(owner.Limits().MaxSites) {
		return nil, errors.NewForbiddenError(
			fmt.Sprintf("site limit reached (%d)", owner.Limits().MaxSites))
	}

	siteSlug, err := resolveSiteSlug(ctx, uc.siteRepo, request.Name, 0)
	if err != nil {
		return nil, err
	}

	siteEntity, err := domainSite.NewSite(actor.UserID, request.Name, siteSlug, request.Template, id.NewSiteID)
	if err != nil {
		return nil, errors.NewValidationError("invalid site", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.siteRepo.Create(txCtx, siteEntity); err != nil {
			if errors.IsDuplicateError(err) {
				// lost the slug race against a concurrent create
				return errors.NewConflictError("site slug is already taken")
			}
			return fmt.Errorf("failed to save site: %w", err)
		}

		homePage, err := domainPage.NewPage(
			siteEntity.ID(), "Home", "home", domainPage.TypeHome, 0, id.NewPageID)
		if err != nil {
			return fmt.Errorf("failed to create default page: %w", err)
		}
		homePage.MarkHomepage()

		if err := uc.pageRepo.Create(txCtx, homePage); err != nil {
			return fmt.Errorf("failed to save default page: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("site created", "id", siteEntity.SID(), "slug", siteEntity.Slug())
	return toSiteResponse(siteEntity), nil
}
