package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/page/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ListPagesUseCase returns a site's pages in position order.
type ListPagesUseCase struct {
	resolver *access.Resolver
	pageRepo domainPage.Repository
	logger   logger.Interface
}

func NewListPagesUseCase(
	resolver *access.Resolver,
	pageRepo domainPage.Repository,
	logger logger.Interface,
) *ListPagesUseCase {
	return &ListPagesUseCase{
		resolver: resolver,
		pageRepo: pageRepo,
		logger:   logger,
	}
}

func (uc *ListPagesUseCase) Execute(ctx context.Context, actor Actor, siteSID string) ([]*dto.PageResponse, error) {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return nil, err
	}

	pages, err := uc.pageRepo.ListBySite(ctx, siteEntity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	responses := make([]*dto.PageResponse, 0, len(pages))
	for _, p := range pages {
		responses = append(responses, toPageResponse(p, siteEntity))
	}
	return responses, nil
}
