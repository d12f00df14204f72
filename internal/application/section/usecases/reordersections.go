package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/section/dto"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ReorderSectionsUseCase rewrites the position of every section in a page.
// The request must list each live section exactly once; positions follow
// the order given.
type ReorderSectionsUseCase struct {
	resolver    *access.Resolver
	sectionRepo domainSection.Repository
	txManager   db.TxManager
	logger      logger.Interface
}

func NewReorderSectionsUseCase(
	resolver *access.Resolver,
	sectionRepo domainSection.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *ReorderSectionsUseCase {
	return &ReorderSectionsUseCase{
		resolver:    resolver,
		sectionRepo: sectionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ReorderSectionsUseCase) Execute(ctx context.Context, actor Actor, request dto.ReorderSectionsRequest) error {
	pageEntity, _, err := uc.resolver.AuthorizePage(ctx, actor, request.PageID)
	if err != nil {
		return err
	}

	sections, err := uc.sectionRepo.ListByPage(ctx, pageEntity.ID())
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}

	positions, err := permutationPositions(sections, request.SectionIDs)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.sectionRepo.UpdatePositions(txCtx, pageEntity.ID(), positions)
	})
	if err != nil {
		return fmt.Errorf("failed to reorder sections: %w", err)
	}

	uc.logger.Infow("sections reordered", "page_id", pageEntity.SID(), "count", len(positions))
	return nil
}

// permutationPositions maps the requested SID order onto numeric IDs,
// rejecting any request that is not an exact permutation of live sections.
func permutationPositions(sections []*domainSection.Section, orderedSIDs []string) (map[uint]int, error) {
	if len(orderedSIDs) != len(sections) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("expected %d section IDs, got %d", len(sections), len(orderedSIDs)))
	}

	idBySID := make(map[string]uint, len(sections))
	for _, s := range sections {
		idBySID[s.SID()] = s.ID()
	}

	positions := make(map[uint]int, len(orderedSIDs))
	for pos, sid := range orderedSIDs {
		sectionID, ok := idBySID[sid]
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown section ID: %s", sid))
		}
		if _, dup := positions[sectionID]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("duplicate section ID: %s", sid))
		}
		positions[sectionID] = pos
	}
	return positions, nil
}
