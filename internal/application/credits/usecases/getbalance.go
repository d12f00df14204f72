package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/credits/dto"
	domainCredits "github.com/webloom-dev/webloom/internal/domain/credits"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// GetBalanceUseCase returns the caller's ledger. Periodic resets are
// applied lazily here, so a due reset is materialized on the first read
// after the boundary.
type GetBalanceUseCase struct {
	creditsRepo domainCredits.Repository
	logger      logger.Interface
}

func NewGetBalanceUseCase(creditsRepo domainCredits.Repository, logger logger.Interface) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		creditsRepo: creditsRepo,
		logger:      logger,
	}
}

func (uc *GetBalanceUseCase) Execute(ctx context.Context, actor Actor) (*dto.BalanceResponse, error) {
	ledger, err := uc.creditsRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	if ledger == nil {
		return nil, errors.NewNotFoundError("credit ledger not found")
	}

	if ledger.ResetIfDue(biztime.NowUTC()) {
		if err := uc.creditsRepo.Update(ctx, ledger); err != nil {
			return nil, fmt.Errorf("failed to persist credit reset: %w", err)
		}
		uc.logger.Infow("credit ledger reset", "user_id", actor.UserID)
	}

	return toBalanceResponse(ledger), nil
}
