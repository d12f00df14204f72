package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/site/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// PublishSiteUseCase publishes a site. A site needs a homepage before it
// can serve, so publishing without one is rejected.
type PublishSiteUseCase struct {
	resolver *access.Resolver
	siteRepo domainSite.Repository
	pageRepo domainPage.Repository
	logger   logger.Interface
}

func NewPublishSiteUseCase(
	resolver *access.Resolver,
	siteRepo domainSite.Repository,
	pageRepo domainPage.Repository,
	logger logger.Interface,
) *PublishSiteUseCase {
	return &PublishSiteUseCase{
		resolver: resolver,
		siteRepo: siteRepo,
		pageRepo: pageRepo,
		logger:   logger,
	}
}

func (uc *PublishSiteUseCase) Execute(ctx context.Context, actor Actor, siteSID string) (*dto.SiteResponse, error) {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return nil, err
	}

	homepage, err := uc.pageRepo.GetHomepage(ctx, siteEntity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load homepage: %w", err)
	}
	if homepage == nil {
		return nil, errors.NewBadRequestError("site needs a homepage before publishing")
	}

	if err := siteEntity.Publish(); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	if err := uc.siteRepo.Update(ctx, siteEntity); err != nil {
		return nil, fmt.Errorf("failed to save site: %w", err)
	}

	uc.logger.Infow("site published", "id", siteEntity.SID())
	return toSiteResponse(siteEntity), nil
}

// Unpublish returns a published site to draft.
func (uc *PublishSiteUseCase) Unpublish(ctx context.Context, actor Actor, siteSID string) (*dto.SiteResponse, error) {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return nil, err
	}

	siteEntity.Unpublish()
	if err := uc.siteRepo.Update(ctx, siteEntity); err != nil {
		return nil, fmt.Errorf("failed to save site: %w", err)
	}

	uc.logger.Infow("site unpublished", "id", siteEntity.SID())
	return toSiteResponse(siteEntity), nil
}
