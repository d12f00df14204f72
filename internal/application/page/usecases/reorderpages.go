package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/page/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ReorderPagesUseCase rewrites the position of every page in a site. The
// request must list each live page exactly once; positions are assigned
// densely from the order given.
type ReorderPagesUseCase struct {
	resolver  *access.Resolver
	pageRepo  domainPage.Repository
	txManager db.TxManager
	logger    logger.Interface
}

func NewReorderPagesUseCase(
	resolver *access.Resolver,
	pageRepo domainPage.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *ReorderPagesUseCase {
	return &ReorderPagesUseCase{
		resolver:  resolver,
		pageRepo:  pageRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *ReorderPagesUseCase) Execute(ctx context.Context, actor Actor, request dto.ReorderPagesRequest) error {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, request.SiteID)
	if err != nil {
		return err
	}

	pages, err := uc.pageRepo.ListBySite(ctx, siteEntity.ID())
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}

	positions, err := permutationPositions(pages, request.PageIDs)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.pageRepo.UpdatePositions(txCtx, siteEntity.ID(), positions)
	})
	if err != nil {
		return fmt.Errorf("failed to reorder pages: %w", err)
	}

	uc.logger.Infow("pages reordered", "site_id", siteEntity.SID(), "count", len(positions))
	return nil
}

// permutationPositions maps the requested SID order onto numeric IDs,
// rejecting any request that is not an exact permutation of live pages.
func permutationPositions(pages []*domainPage.Page, orderedSIDs []string) (map[uint]int, error) {
	if len(orderedSIDs) != len(pages) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("expected %d page IDs, got %d", len(pages), len(orderedSIDs)))
	}

	idBySID := make(map[string]uint, len(pages))
	for _, p := range pages {
		idBySID[p.SID()] = p.ID()
	}

	positions := make(map[uint]int, len(orderedSIDs))
	for pos, sid := range orderedSIDs {
		pageID, ok := idBySID[sid]
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown page ID: %s", sid))
		}
		if _, dup := positions[pageID]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("duplicate page ID: %s", sid))
		}
		positions[pageID] = pos
	}
	return positions, nil
}
