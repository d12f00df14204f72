package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/site/dto"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// UpdateSiteUseCase applies a partial update. Settings blobs are shallow
// merged; a name change regenerates the slug.
type UpdateSiteUseCase struct {
	resolver *access.Resolver
	siteRepo domainSite.Repository
	logger   logger.Interface
}

func NewUpdateSiteUseCase(
	resolver *access.Resolver,
	siteRepo domainSite.Repository,
	logger logger.Interface,
) *UpdateSiteUseCase {
	return &UpdateSiteUseCase{
		resolver: resolver,
		siteRepo: siteRepo,
		logger:   logger,
	}
}

func (uc *UpdateSiteUseCase) Execute(ctx context.Context, actor Actor, siteSID string, request dto.UpdateSiteRequest) (*dto.SiteResponse, error) {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil && *request.Name != siteEntity.Name() {
		if err := siteEntity.Rename(*request.Name); err != nil {
			return nil, errors.NewValidationError("invalid site name", err.Error())
		}
		newSlug, err := resolveSiteSlug(ctx, uc.siteRepo, *request.Name, siteEntity.ID())
		if err != nil {
			return nil, err
		}
		if err := siteEntity.SetSlug(newSlug); err != nil {
			return nil, errors.NewValidationError("invalid site slug", err.Error())
		}
	}

	if request.Template != nil {
		siteEntity.SetTemplate(*request.Template)
	}
	if request.StyleSettings != nil {
		siteEntity.MergeStyleSettings(request.StyleSettings)
	}
	if request.SEOSettings != nil {
		siteEntity.MergeSEOSettings(request.SEOSettings)
	}
	if request.CustomCode != nil {
		siteEntity.MergeCustomCode(request.CustomCode)
	}

	if err := uc.siteRepo.Update(ctx, siteEntity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("site slug is already taken")
		}
		return nil, fmt.Errorf("failed to save site: %w", err)
	}

	uc.logger.Infow("site updated", "id", siteEntity.SID())
	return toSiteResponse(siteEntity), nil
}
