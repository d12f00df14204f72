package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// DeleteSectionUseCase soft-deletes a section. The last section of a page
// cannot be removed; deactivate it instead.
type DeleteSectionUseCase struct {
	resolver    *access.Resolver
	sectionRepo domainSection.Repository
	txManager   db.TxManager
	logger      logger.Interface
}

func NewDeleteSectionUseCase(
	resolver *access.Resolver,
	sectionRepo domainSection.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *DeleteSectionUseCase {
	return &DeleteSectionUseCase{
		resolver:    resolver,
		sectionRepo: sectionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeleteSectionUseCase) Execute(ctx context.Context, actor Actor, sectionSID string) error {
	sectionEntity, pageEntity, _, err := uc.resolver.AuthorizeSection(ctx, actor, sectionSID)
	if err != nil {
		return err
	}

	// the last-section check and the delete must see the same state
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := uc.sectionRepo.CountByPage(txCtx, pageEntity.ID())
		if err != nil {
			return fmt.Errorf("failed to count sections: %w", err)
		}
		if count <= 1 {
			return errors.NewConflictError("cannot delete the last section of a page")
		}

		sectionEntity.SoftDelete(biztime.NowUTC())
		return uc.sectionRepo.SoftDelete(txCtx, sectionEntity)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("section deleted", "id", sectionEntity.SID(), "page_id", pageEntity.SID())
	return nil
}
