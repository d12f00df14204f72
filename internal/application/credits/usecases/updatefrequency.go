package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/credits/dto"
	domainCredits "github.com/webloom-dev/webloom/internal/domain/credits"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// UpdateResetFrequencyUseCase changes a ledger's reset cadence, admin only.
// Plan changes drive this, e.g. a paid plan switching to daily resets.
type UpdateResetFrequencyUseCase struct {
	creditsRepo domainCredits.Repository
	userRepo    domainUser.Repository
	logger      logger.Interface
}

func NewUpdateResetFrequencyUseCase(
	creditsRepo domainCredits.Repository,
	userRepo domainUser.Repository,
	logger logger.Interface,
) *UpdateResetFrequencyUseCase {
	return &UpdateResetFrequencyUseCase{
		creditsRepo: creditsRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *UpdateResetFrequencyUseCase) Execute(ctx context.Context, actor Actor, request dto.UpdateResetFrequencyRequest) (*dto.BalanceResponse, error) {
	if actor.Role != authorization.RoleAdmin {
		return nil, errors.NewForbiddenError("only administrators can change the reset frequency")
	}

	target, err := uc.userRepo.GetBySID(ctx, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if target == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	ledger, err := uc.creditsRepo.GetByUserID(ctx, target.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	if ledger == nil {
		return nil, errors.NewNotFoundError("credit ledger not found")
	}

	if err := ledger.SetFrequency(domainCredits.ResetFrequency(request.Frequency), biztime.NowUTC()); err != nil {
		return nil, errors.NewValidationError("invalid reset frequency", err.Error())
	}
	if err := uc.creditsRepo.Update(ctx, ledger); err != nil {
		return nil, fmt.Errorf("failed to save ledger: %w", err)
	}

	uc.logger.Infow("credit reset frequency changed",
		"admin_id", actor.UserID, "user_id", target.SID(), "frequency", request.Frequency)
	return toBalanceResponse(ledger), nil
}
