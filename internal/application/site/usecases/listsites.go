package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/site/dto"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/utils"
)

// ListSitesUseCase pages through the caller's own sites, newest first.
type ListSitesUseCase struct {
	siteRepo domainSite.Repository
	logger   logger.Interface
}

func NewListSitesUseCase(siteRepo domainSite.Repository, logger logger.Interface) *ListSitesUseCase {
	return &ListSitesUseCase{
		siteRepo: siteRepo,
		logger:   logger,
	}
}

func (uc *ListSitesUseCase) Execute(ctx context.Context, actor Actor, pagination utils.Pagination) ([]*dto.SiteResponse, int64, error) {
	sites, total, err := uc.siteRepo.ListByOwner(ctx, actor.UserID, pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sites: %w", err)
	}

	responses := make([]*dto.SiteResponse, 0, len(sites))
	for _, s := range sites {
		responses = append(responses, toSiteResponse(s))
	}

	return responses, total, nil
}
