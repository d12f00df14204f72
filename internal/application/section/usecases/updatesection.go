package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/section/dto"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/services/content"
)

// UpdateSectionUseCase applies a partial update. User-authored content
// strings are sanitized before the merge so stored blobs are always safe
// to render.
type UpdateSectionUseCase struct {
	resolver       *access.Resolver
	sectionRepo    domainSection.Repository
	contentService content.Service
	logger         logger.Interface
}

func NewUpdateSectionUseCase(
	resolver *access.Resolver,
	sectionRepo domainSection.Repository,
	contentService content.Service,
	logger logger.Interface,
) *UpdateSectionUseCase {
	return &UpdateSectionUseCase{
		resolver:       resolver,
		sectionRepo:    sectionRepo,
		contentService: contentService,
		logger:         logger,
	}
}

func (uc *UpdateSectionUseCase) Execute(ctx context.Context, actor Actor, sectionSID string, request dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	sectionEntity, pageEntity, _, err := uc.resolver.AuthorizeSection(ctx, actor, sectionSID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		sectionEntity.Retitle(*request.Title)
	}
	if request.IsActive != nil {
		sectionEntity.SetActive(*request.IsActive)
	}
	if request.Content != nil {
		sectionEntity.MergeContent(uc.contentService.SanitizeBlob(request.Content))
	}
	if request.Settings != nil {
		sectionEntity.MergeSettings(request.Settings)
	}

	if err := uc.sectionRepo.Update(ctx, sectionEntity); err != nil {
		return nil, fmt.Errorf("failed to save section: %w", err)
	}

	uc.logger.Infow("section updated", "id", sectionEntity.SID())
	return toSectionResponse(sectionEntity, pageEntity), nil
}
