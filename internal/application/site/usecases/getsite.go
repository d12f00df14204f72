package usecases

import (
	"context"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/site/dto"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// GetSiteUseCase returns a single site after the ownership check.
type GetSiteUseCase struct {
	resolver *access.Resolver
	logger   logger.Interface
}

func NewGetSiteUseCase(resolver *access.Resolver, logger logger.Interface) *GetSiteUseCase {
	return &GetSiteUseCase{
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *GetSiteUseCase) Execute(ctx context.Context, actor Actor, siteSID string) (*dto.SiteResponse, error) {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return nil, err
	}
	return toSiteResponse(siteEntity), nil
}
