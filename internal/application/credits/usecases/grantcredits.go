package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/credits/dto"
	domainCredits "github.com/webloom-dev/webloom/internal/domain/credits"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// GrantCreditsUseCase raises a user's allowance, admin only. Purchases go
// through the payment flow instead; this is the manual escape hatch.
type GrantCreditsUseCase struct {
	creditsRepo domainCredits.Repository
	userRepo    domainUser.Repository
	logger      logger.Interface
}

func NewGrantCreditsUseCase(
	creditsRepo domainCredits.Repository,
	userRepo domainUser.Repository,
	logger logger.Interface,
) *GrantCreditsUseCase {
	return &GrantCreditsUseCase{
		creditsRepo: creditsRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GrantCreditsUseCase) Execute(ctx context.Context, actor Actor, request dto.GrantCreditsRequest) (*dto.BalanceResponse, error) {
	if actor.Role != authorization.RoleAdmin {
		return nil, errors.NewForbiddenError("only administrators can grant credits")
	}

	target, err := uc.userRepo.GetBySID(ctx, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if target == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := uc.creditsRepo.GrantAtomic(ctx, target.ID(), request.Amount); err != nil {
		return nil, fmt.Errorf("failed to grant credits: %w", err)
	}

	ledger, err := uc.creditsRepo.GetByUserID(ctx, target.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	if ledger == nil {
		return nil, errors.NewNotFoundError("credit ledger not found")
	}

	uc.logger.Infow("credits granted",
		"admin_id", actor.UserID, "user_id", target.SID(), "amount", request.Amount)
	return toBalanceResponse(ledger), nil
}
