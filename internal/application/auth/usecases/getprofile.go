package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/auth/dto"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// GetProfileUseCase returns the authenticated user's own account.
type GetProfileUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo domainUser.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userSID string) (*dto.UserResponse, error) {
	userEntity, err := uc.userRepo.GetBySID(ctx, userSID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if userEntity == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return toUserResponse(userEntity), nil
}
