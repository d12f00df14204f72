package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainCredits "github.com/webloom-dev/webloom/internal/domain/credits"
	domainPayment "github.com/webloom-dev/webloom/internal/domain/payment"
	vo "github.com/webloom-dev/webloom/internal/domain/payment/valueobjects"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ConfirmIntentUseCase settles a pending payment. The processor confirms
// first; on success the local record completes and, for credit purchases,
// the bought credits are granted in the same transaction.
type ConfirmIntentUseCase struct {
	paymentRepo   domainPayment.Repository
	creditsRepo   domainCredits.Repository
	billingClient billing.Client
	txManager     db.TxManager
	logger        logger.Interface
}

func NewConfirmIntentUseCase(
	paymentRepo domainPayment.Repository,
	creditsRepo domainCredits.Repository,
	billingClient billing.Client,
	txManager db.TxManager,
	logger logger.Interface,
) *ConfirmIntentUseCase {
	return &ConfirmIntentUseCase{
		paymentRepo:   paymentRepo,
		creditsRepo:   creditsRepo,
		billingClient: billingClient,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *ConfirmIntentUseCase) Execute(ctx context.Context, actor Actor, paymentSID string) (*dto.PaymentResponse, error) {
	paymentEntity, err := loadOwnPayment(ctx, uc.paymentRepo, actor, paymentSID)
	if err != nil {
		return nil, err
	}
	if paymentEntity.Status() != vo.PaymentStatusPending {
		return nil, errors.NewConflictError(
			fmt.Sprintf("payment is %s, only pending payments can be confirmed", paymentEntity.Status()))
	}

	intent, err := uc.billingClient.ConfirmIntent(ctx, paymentEntity.ProcessorRef())
	if err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	switch intent.Status {
	case billing.IntentStatusSucceeded:
		err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := paymentEntity.Complete(biztime.NowUTC()); err != nil {
				return errors.NewConflictError(err.Error())
			}
			if err := uc.paymentRepo.Update(txCtx, paymentEntity); err != nil {
				return fmt.Errorf("failed to save payment: %w", err)
			}
			if credits := purchasedCredits(paymentEntity); credits > 0 {
				if err := uc.creditsRepo.GrantAtomic(txCtx, paymentEntity.UserID(), credits); err != nil {
					return fmt.Errorf("failed to grant purchased credits: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		uc.logger.Infow("payment completed", "id", paymentEntity.SID(), "order_no", paymentEntity.OrderNo())

	case billing.IntentStatusCanceled:
		if err := paymentEntity.Cancel(); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		if err := uc.paymentRepo.Update(ctx, paymentEntity); err != nil {
			return nil, fmt.Errorf("failed to save payment: %w", err)
		}

	default:
		// the processor still wants confirmation, e.g. 3DS pending
		return nil, errors.NewConflictError(
			fmt.Sprintf("payment not settled by the processor, status: %s", intent.Status))
	}

	return toPaymentResponse(paymentEntity), nil
}

// purchasedCredits reads the credit count from a credit purchase payment.
// Metadata survives a JSON round trip, so numbers arrive as float64.
func purchasedCredits(p *domainPayment.Payment) int64 {
	if p.PaymentType() != vo.PaymentTypeCreditPurchase {
		return 0
	}
	switch v := p.Metadata()["credits"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}
