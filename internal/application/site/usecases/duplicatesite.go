package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/site/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// DuplicateSiteUseCase clones a site as a fresh draft. With IncludeContent
// the full page and section tree is copied in the same transaction; the
// copy of the source homepage keeps the homepage flag so the duplicate is
// publishable as-is.
type DuplicateSiteUseCase struct {
	resolver    *access.Resolver
	siteRepo    domainSite.Repository
	pageRepo    domainPage.Repository
	sectionRepo domainSection.Repository
	userRepo    domainUser.Repository
	txManager   db.TxManager
	logger      logger.Interface
}

func NewDuplicateSiteUseCase(
	resolver *access.Resolver,
	siteRepo domainSite.Repository,
	pageRepo domainPage.Repository,
	sectionRepo domainSection.Repository,
	userRepo domainUser.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *DuplicateSiteUseCase {
	return &DuplicateSiteUseCase{
		resolver:    resolver,
		siteRepo:    siteRepo,
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DuplicateSiteUseCase) Execute(ctx context.Context, actor Actor, siteSID string, request dto.DuplicateSiteRequest) (*dto.SiteResponse, error) {
	source, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.GetByID(ctx, source.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	count, err := uc.siteRepo.CountByOwner(ctx, source.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("failed to count sites: %w", err)
	}
	if count >= int64(owner.Limits().MaxSites) {
		return nil, errors.NewForbiddenError(
			fmt.Sprintf("site limit reached (%d)", owner.Limits().MaxSites))
	}

	name := request.Name
	if name == "" {
		name = source.Name() + " (copy)"
	}
	siteSlug, err := resolveSiteSlug(ctx, uc.siteRepo, name, 0)
	if err != nil {
		return nil, err
	}

	duplicate, err := domainSite.NewSiteFromSnapshot(source, name, siteSlug, id.NewSiteID)
	if err != nil {
		return nil, errors.NewValidationError("invalid site", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.siteRepo.Create(txCtx, duplicate); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("site slug is already taken")
			}
			return fmt.Errorf("failed to save site: %w", err)
		}
		if !request.IncludeContent {
			return nil
		}
		return uc.copyContent(txCtx, source, duplicate)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("site duplicated",
		"source_id", source.SID(), "id", duplicate.SID(), "with_content", request.IncludeContent)
	return toSiteResponse(duplicate), nil
}

func (uc *DuplicateSiteUseCase) copyContent(ctx context.Context, source, duplicate *domainSite.Site) error {
	pages, err := uc.pageRepo.ListBySite(ctx, source.ID())
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}

	for _, srcPage := range pages {
		dupPage, err := domainPage.NewPageFromSnapshot(
			srcPage, duplicate.ID(), srcPage.Title(), srcPage.Slug(), srcPage.Position(), id.NewPageID)
		if err != nil {
			return fmt.Errorf("failed to copy page: %w", err)
		}
		if srcPage.IsHomepage() {
			dupPage.MarkHomepage()
		}
		if err := uc.pageRepo.Create(ctx, dupPage); err != nil {
			return fmt.Errorf("failed to save page copy: %w", err)
		}

		sections, err := uc.sectionRepo.ListByPage(ctx, srcPage.ID())
		if err != nil {
			return fmt.Errorf("failed to list sections: %w", err)
		}
		for _, srcSection := range sections {
			dupSection, err := domainSection.NewSectionFromSnapshot(
				srcSection, dupPage.ID(), srcSection.Position(), id.NewSectionID)
			if err != nil {
				return fmt.Errorf("failed to copy section: %w", err)
			}
			if err := uc.sectionRepo.Create(ctx, dupSection); err != nil {
				return fmt.Errorf("failed to save section copy: %w", err)
			}
		}
	}
	return nil
}
