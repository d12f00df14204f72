package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/section/dto"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// CreateSectionUseCase appends a section to a page, enforcing the per-page
// section quota. New sections start with the type's default content.
type CreateSectionUseCase struct {
	resolver    *access.Resolver
	sectionRepo domainSection.Repository
	userRepo    domainUser.Repository
	logger      logger.Interface
}

func NewCreateSectionUseCase(
	resolver *access.Resolver,
	sectionRepo domainSection.Repository,
	userRepo domainUser.Repository,
	logger logger.Interface,
) *CreateSectionUseCase {
	return &CreateSectionUseCase{
		resolver:    resolver,
		sectionRepo: sectionRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *CreateSectionUseCase) Execute(ctx context.Context, actor Actor, pageSID string, request dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	pageEntity, siteEntity, err := uc.resolver.AuthorizePage(ctx, actor, pageSID)
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

	count, err := uc.sectionRepo.CountByPage(ctx, pageEntity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count sections: %w", err)
	}
	if count >= int64(owner.Limits().MaxSectionsPerPage) {
		return nil, errors.NewForbiddenError(
			fmt.Sprintf("section limit reached (%d)", owner.Limits().MaxSectionsPerPage))
	}

	sectionEntity, err := domainSection.NewSection(
		pageEntity.ID(), request.Title, domainSection.Type(request.Type), int(count), id.NewSectionID)
	if err != nil {
		return nil, errors.NewValidationError("invalid section", err.Error())
	}

	if err := uc.sectionRepo.Create(ctx, sectionEntity); err != nil {
		return nil, fmt.Errorf("failed to save section: %w", err)
	}

	uc.logger.Infow("section created",
		"id", sectionEntity.SID(), "page_id", pageEntity.SID(), "type", sectionEntity.SectionType())
	return toSectionResponse(sectionEntity, pageEntity), nil
}
