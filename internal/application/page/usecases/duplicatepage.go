package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/page/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// DuplicatePageUseCase clones a page with its sections inside one
// transaction. The copy lands at the end of the page order and is never
// marked homepage.
type DuplicatePageUseCase struct {
	resolver    *access.Resolver
	pageRepo    domainPage.Repository
	sectionRepo domainSection.Repository
	userRepo    domainUser.Repository
	txManager   db.TxManager
	logger      logger.Interface
}

func NewDuplicatePageUseCase(
	resolver *access.Resolver,
	pageRepo domainPage.Repository,
	sectionRepo domainSection.Repository,
	userRepo domainUser.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *DuplicatePageUseCase {
	return &DuplicatePageUseCase{
		resolver:    resolver,
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DuplicatePageUseCase) Execute(ctx context.Context, actor Actor, pageSID string, request dto.DuplicatePageRequest) (*dto.PageResponse, error) {
	source, siteEntity, err := uc.resolver.AuthorizePage(ctx, actor, pageSID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.GetByID(ctx, siteEntity.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	count, err := uc.pageRepo.CountBySite(ctx, siteEntity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}
	if count >= int64(owner.Limits().MaxPagesPerSite) {
		return nil, errors.NewForbiddenError(
			fmt.Sprintf("page limit reached (%d)", owner.Limits().MaxPagesPerSite))
	}

	title := request.Title
	if title == "" {
		title = source.Title() + " (copy)"
	}
	pageSlug, err := resolvePageSlug(ctx, uc.pageRepo, siteEntity.ID(), title, 0)
	if err != nil {
		return nil, err
	}

	duplicate, err := domainPage.NewPageFromSnapshot(source, siteEntity.ID(), title, pageSlug, int(count), id.NewPageID)
	if err != nil {
		return nil, errors.NewValidationError("invalid page", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.pageRepo.Create(txCtx, duplicate); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("page slug is already taken in this site")
			}
			return fmt.Errorf("failed to save page: %w", err)
		}

		sections, err := uc.sectionRepo.ListByPage(txCtx, source.ID())
		if err != nil {
			return fmt.Errorf("failed to list sections: %w", err)
		}
		for _, srcSection := range sections {
			dupSection, err := domainSection.NewSectionFromSnapshot(
				srcSection, duplicate.ID(), srcSection.Position(), id.NewSectionID)
			if err != nil {
				return fmt.Errorf("failed to copy section: %w", err)
			}
			if err := uc.sectionRepo.Create(txCtx, dupSection); err != nil {
				return fmt.Errorf("failed to save section copy: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("page duplicated", "source_id", source.SID(), "id", duplicate.SID())
	return toPageResponse(duplicate, siteEntity), nil
}
