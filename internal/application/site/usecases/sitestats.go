package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/site/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// SiteStatsUseCase aggregates live page and section counts for a site.
type SiteStatsUseCase struct {
	resolver    *access.Resolver
	pageRepo    domainPage.Repository
	sectionRepo domainSection.Repository
	logger      logger.Interface
}

func NewSiteStatsUseCase(
	resolver *access.Resolver,
	pageRepo domainPage.Repository,
	sectionRepo domainSection.Repository,
	logger logger.Interface,
) *SiteStatsUseCase {
	return &SiteStatsUseCase{
		resolver:    resolver,
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

func (uc *SiteStatsUseCase) Execute(ctx context.Context, actor Actor, siteSID string) (*dto.SiteStatsResponse, error) {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return nil, err
	}

	pages, err := uc.pageRepo.ListBySite(ctx, siteEntity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	sectionCount, err := uc.sectionRepo.CountBySite(ctx, siteEntity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count sections: %w", err)
	}

	return &dto.SiteStatsResponse{
		ID:           siteEntity.SID(),
		PageCount:    int64(len(pages)),
		SectionCount: sectionCount,
		Status:       siteEntity.Status().String(),
		PublishedAt:  siteEntity.PublishedAt(),
		UpdatedAt:    siteEntity.UpdatedAt(),
	}, nil
}
