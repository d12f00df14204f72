package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/page/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// CreatePageUseCase appends a page to a site, enforcing the per-site page
// quota. The first page of a site automatically becomes the homepage.
type CreatePageUseCase struct {
	resolver *access.Resolver
	pageRepo domainPage.Repository
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewCreatePageUseCase(
	resolver *access.Resolver,
	pageRepo domainPage.Repository,
	userRepo domainUser.Repository,
	logger logger.Interface,
) *CreatePageUseCase {
	return &CreatePageUseCase{
		resolver: resolver,
		pageRepo: pageRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *CreatePageUseCase) Execute(ctx context.Context, actor Actor, siteSID string, request dto.CreatePageRequest) (*dto.PageResponse, error) {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.GetByID(ctx, siteEntity.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	count, err := uc.pageRepo.CountBySite(ctx, siteEntity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}
	if count >= int64(owner.Limits().MaxPagesPerSite) {
		return nil, errors.NewForbiddenError(
			fmt.Sprintf("page limit reached (%d)", owner.Limits().MaxPagesPerSite))
	}

	pageType := domainPage.Type(request.Type)
	if request.Type == "" {
		pageType = domainPage.TypePage
	}

	pageSlug, err := resolvePageSlug(ctx, uc.pageRepo, siteEntity.ID(), request.Title, 0)
	if err != nil {
		return nil, err
	}

	pageEntity, err := domainPage.NewPage(siteEntity.ID(), request.Title, pageSlug, pageType, int(count), id.NewPageID)
	if err != nil {
		return nil, errors.NewValidationError("invalid page", err.Error())
	}
	if count == 0 {
		pageEntity.MarkHomepage()
	}

	if err := uc.pageRepo.Create(ctx, pageEntity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("page slug is already taken in this site")
		}
		return nil, fmt.Errorf("failed to save page: %w", err)
	}

	uc.logger.Infow("page created",
		"id", pageEntity.SID(), "site_id", siteEntity.SID(), "slug", pageEntity.Slug())
	return toPageResponse(pageEntity, siteEntity), nil
}
