package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// DeleteSiteUseCase soft-deletes a site and cascades to its pages and
// sections inside one transaction. The slug is freed for reuse.
type DeleteSiteUseCase struct {
	resolver    *access.Resolver
	siteRepo    domainSite.Repository
	pageRepo    domainPage.Repository
	sectionRepo domainSection.Repository
	txManager   db.TxManager
	logger      logger.Interface
}

func NewDeleteSiteUseCase(
	resolver *access.Resolver,
	siteRepo domainSite.Repository,
	pageRepo domainPage.Repository,
	sectionRepo domainSection.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *DeleteSiteUseCase {
	return &DeleteSiteUseCase{
		resolver:    resolver,
		siteRepo:    siteRepo,
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeleteSiteUseCase) Execute(ctx context.Context, actor Actor, siteSID string) error {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		pages, err := uc.pageRepo.ListBySite(txCtx, siteEntity.ID())
		if err != nil {
			return fmt.Errorf("failed to list pages: %w", err)
		}

		pageIDs := make([]uint, 0, len(pages))
		for _, p := range pages {
			pageIDs = append(pageIDs, p.ID())
		}
		if err := uc.sectionRepo.SoftDeleteByPages(txCtx, pageIDs); err != nil {
			return err
		}
		if err := uc.pageRepo.SoftDeleteBySite(txCtx, siteEntity.ID()); err != nil {
			return err
		}

		siteEntity.SoftDelete(biztime.NowUTC())
		return uc.siteRepo.SoftDelete(txCtx, siteEntity)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("site deleted", "id", siteEntity.SID())
	return nil
}
