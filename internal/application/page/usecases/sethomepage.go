package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/page/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// SetHomepageUseCase moves the homepage flag to another page of the same
// site. The unflag and flag writes share one transaction so the site never
// has two homepages.
type SetHomepageUseCase struct {
	resolver  *access.Resolver
	pageRepo  domainPage.Repository
	txManager db.TxManager
	logger    logger.Interface
}

func NewSetHomepageUseCase(
	resolver *access.Resolver,
	pageRepo domainPage.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *SetHomepageUseCase {
	return &SetHomepageUseCase{
		resolver:  resolver,
		pageRepo:  pageRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *SetHomepageUseCase) Execute(ctx context.Context, actor Actor, pageSID string) (*dto.PageResponse, error) {
	pageEntity, siteEntity, err := uc.resolver.AuthorizePage(ctx, actor, pageSID)
	if err != nil {
		return nil, err
	}

	if pageEntity.IsHomepage() {
		return toPageResponse(pageEntity, siteEntity), nil
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, err := uc.pageRepo.GetHomepage(txCtx, siteEntity.ID())
		if err != nil {
			return fmt.Errorf("failed to load homepage: %w", err)
		}
		if current != nil {
			current.UnmarkHomepage()
			if err := uc.pageRepo.Update(txCtx, current); err != nil {
				return fmt.Errorf("failed to unmark homepage: %w", err)
			}
		}

		pageEntity.MarkHomepage()
		return uc.pageRepo.Update(txCtx, pageEntity)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("homepage changed", "site_id", siteEntity.SID(), "page_id", pageEntity.SID())
	return toPageResponse(pageEntity, siteEntity), nil
}
