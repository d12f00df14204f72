package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/section/dto"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ListSectionsUseCase returns a page's sections in position order.
type ListSectionsUseCase struct {
	resolver    *access.Resolver
	sectionRepo domainSection.Repository
	logger      logger.Interface
}

func NewListSectionsUseCase(
	resolver *access.Resolver,
	sectionRepo domainSection.Repository,
	logger logger.Interface,
) *ListSectionsUseCase {
	return &ListSectionsUseCase{
		resolver:    resolver,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

func (uc *ListSectionsUseCase) Execute(ctx context.Context, actor Actor, pageSID string) ([]*dto.SectionResponse, error) {
	pageEntity, _, err := uc.resolver.AuthorizePage(ctx, actor, pageSID)
	if err != nil {
		return nil, err
	}

	sections, err := uc.sectionRepo.ListByPage(ctx, pageEntity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	responses := make([]*dto.SectionResponse, 0, len(sections))
	for _, s := range sections {
		responses = append(responses, toSectionResponse(s, pageEntity))
	}
	return responses, nil
}
