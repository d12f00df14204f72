package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/credits/dto"
	domainCredits "github.com/webloom-dev/webloom/internal/domain/credits"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ConsumeCreditsUseCase spends credits for an AI generation call. A due
// periodic reset is applied first, then the spend itself goes through the
// conditional update so concurrent calls cannot overdraw.
type ConsumeCreditsUseCase struct {
	creditsRepo domainCredits.Repository
	txManager   db.TxManager
	logger      logger.Interface
}

func NewConsumeCreditsUseCase(
	creditsRepo domainCredits.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *ConsumeCreditsUseCase {
	return &ConsumeCreditsUseCase{
		creditsRepo: creditsRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ConsumeCreditsUseCase) Execute(ctx context.Context, actor Actor, request dto.ConsumeCreditsRequest) (*dto.BalanceResponse, error) {
	var ledger *domainCredits.Ledger

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		ledger, err = uc.creditsRepo.GetByUserID(txCtx, actor.UserID)
		if err != nil {
			return fmt.Errorf("failed to load ledger: %w", err)
		}
		if ledger == nil {
			return errors.NewNotFoundError("credit ledger not found")
		}

		if ledger.ResetIfDue(biztime.NowUTC()) {
			if err := uc.creditsRepo.Update(txCtx, ledger); err != nil {
				return fmt.Errorf("failed to persist credit reset: %w", err)
			}
		}

		consumed, err := uc.creditsRepo.ConsumeAtomic(txCtx, actor.UserID, request.Amount)
		if err != nil {
			return fmt.Errorf("failed to consume credits: %w", err)
		}
		if !consumed {
			return errors.NewForbiddenError(
				fmt.Sprintf("insufficient credits: %d remaining, %d requested", ledger.Remaining(), request.Amount))
		}

		// mirror the spend on the in-memory copy for the response
		return ledger.Consume(request.Amount)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("credits consumed",
		"user_id", actor.UserID, "amount", request.Amount, "reason", request.Reason)
	return toBalanceResponse(ledger), nil
}
