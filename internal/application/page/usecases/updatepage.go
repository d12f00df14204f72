package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/page/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// UpdatePageUseCase applies a partial update. A title change regenerates
// the slug within the site scope.
type UpdatePageUseCase struct {
	resolver *access.Resolver
	pageRepo domainPage.Repository
	logger   logger.Interface
}

func NewUpdatePageUseCase(
	resolver *access.Resolver,
	pageRepo domainPage.Repository,
	logger logger.Interface,
) *UpdatePageUseCase {
	return &UpdatePageUseCase{
		resolver: resolver,
		pageRepo: pageRepo,
		logger:   logger,
	}
}

func (uc *UpdatePageUseCase) Execute(ctx context.Context, actor Actor, pageSID string, request dto.UpdatePageRequest) (*dto.PageResponse, error) {
	pageEntity, siteEntity, err := uc.resolver.AuthorizePage(ctx, actor, pageSID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		changed, err := pageEntity.Retitle(*request.Title)
		if err != nil {
			return nil, errors.NewValidationError("invalid page title", err.Error())
		}
		if changed {
			newSlug, err := resolvePageSlug(ctx, uc.pageRepo, siteEntity.ID(), *request.Title, pageEntity.ID())
			if err != nil {
				return nil, err
			}
			if err := pageEntity.SetSlug(newSlug); err != nil {
				return nil, errors.NewValidationError("invalid page slug", err.Error())
			}
		}
	}

	if request.Status != nil {
		if err := pageEntity.UpdateStatus(domainPage.Status(*request.Status)); err != nil {
			return nil, errors.NewValidationError("invalid page status", err.Error())
		}
	}
	if request.SEOSettings != nil {
		pageEntity.MergeSEOSettings(request.SEOSettings)
	}
	if request.Settings != nil {
		pageEntity.MergeSettings(request.Settings)
	}

	if err := uc.pageRepo.Update(ctx, pageEntity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("page slug is already taken in this site")
		}
		return nil, fmt.Errorf("failed to save page: %w", err)
	}

	uc.logger.Infow("page updated", "id", pageEntity.SID())
	return toPageResponse(pageEntity, siteEntity), nil
}
