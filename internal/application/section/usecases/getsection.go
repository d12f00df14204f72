package usecases

import (
	"context"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/section/dto"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/services/content"
	"github.com/webloom-dev/webloom/internal/shared/utils/jsonutil"
)

// GetSectionUseCase returns a single section after the chain check.
// Content sections carry their markdown body rendered to sanitized HTML
// under body_html so editors can preview without a client-side renderer.
type GetSectionUseCase struct {
	resolver       *access.Resolver
	contentService content.Service
	logger         logger.Interface
}

func NewGetSectionUseCase(resolver *access.Resolver, contentService content.Service, logger logger.Interface) *GetSectionUseCase {
	return &GetSectionUseCase{
		resolver:       resolver,
		contentService: contentService,
		logger:         logger,
	}
}

func (uc *GetSectionUseCase) Execute(ctx context.Context, actor Actor, sectionSID string) (*dto.SectionResponse, error) {
	sectionEntity, pageEntity, _, err := uc.resolver.AuthorizeSection(ctx, actor, sectionSID)
	if err != nil {
		return nil, err
	}

	response := toSectionResponse(sectionEntity, pageEntity)

	if sectionEntity.SectionType() == domainSection.TypeContent && response.Content != nil {
		if body, ok := response.Content["body"].(string); ok && body != "" {
			rendered, err := uc.contentService.ToHTMLSanitized(body)
			if err != nil {
				uc.logger.Warnw("failed to render section body",
					"id", sectionEntity.SID(), "error", err)
			} else {
				// copy before augmenting, the mapper aliases the aggregate's blob
				response.Content = jsonutil.Clone(response.Content)
				response.Content["body_html"] = rendered
			}
		}
	}

	return response, nil
}
