package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// DeletePageUseCase soft-deletes a page and its sections. The last page of
// a site cannot be deleted; when the homepage is deleted the remaining page
// with the lowest position is promoted in the same transaction.
type DeletePageUseCase struct {
	resolver    *access.Resolver
	pageRepo    domainPage.Repository
	sectionRepo domainSection.Repository
	txManager   db.TxManager
	logger      logger.Interface
}

func NewDeletePageUseCase(
	resolver *access.Resolver,
	pageRepo domainPage.Repository,
	sectionRepo domainSection.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *DeletePageUseCase {
	return &DeletePageUseCase{
		resolver:    resolver,
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeletePageUseCase) Execute(ctx context.Context, actor Actor, pageSID string) error {
	pageEntity, siteEntity, err := uc.resolver.AuthorizePage(ctx, actor, pageSID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		pages, err := uc.pageRepo.ListBySite(txCtx, siteEntity.ID())
		if err != nil {
			return fmt.Errorf("failed to list pages: %w", err)
		}
		if len(pages) <= 1 {
			return errors.NewConflictError("cannot delete the last page of a site")
		}

		wasHomepage := pageEntity.IsHomepage()

		if err := uc.sectionRepo.SoftDeleteByPage(txCtx, pageEntity.ID()); err != nil {
			return err
		}
		pageEntity.SoftDelete(biztime.NowUTC())
		if err := uc.pageRepo.SoftDelete(txCtx, pageEntity); err != nil {
			return err
		}

		if wasHomepage {
			successor := lowestPositionSurvivor(pages, pageEntity.ID())
			if successor != nil {
				successor.MarkHomepage()
				if err := uc.pageRepo.Update(txCtx, successor); err != nil {
					return fmt.Errorf("failed to promote homepage: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("page deleted", "id", pageEntity.SID(), "site_id", siteEntity.SID())
	return nil
}

func lowestPositionSurvivor(pages []*domainPage.Page, deletedID uint) *domainPage.Page {
	var best *domainPage.Page
	for _, p := range pages {
		if p.ID() == deletedID {
			continue
		}
		if best == nil || p.Position() < best.Position() {
			best = p
		}
	}
	return best
}
