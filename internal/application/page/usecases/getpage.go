package usecases

import (
	"context"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/page/dto"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// GetPageUseCase returns a single page after the ownership chain check.
type GetPageUseCase struct {
	resolver *access.Resolver
	logger   logger.Interface
}

func NewGetPageUseCase(resolver *access.Resolver, logger logger.Interface) *GetPageUseCase {
	return &GetPageUseCase{
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *GetPageUseCase) Execute(ctx context.Context, actor Actor, pageSID string) (*dto.PageResponse, error) {
	pageEntity, siteEntity, err := uc.resolver.AuthorizePage(ctx, actor, pageSID)
	if err != nil {
		return nil, err
	}
	return toPageResponse(pageEntity, siteEntity), nil
}
