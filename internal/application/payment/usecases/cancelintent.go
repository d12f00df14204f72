package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainPayment "github.com/webloom-dev/webloom/internal/domain/payment"
	vo "github.com/webloom-dev/webloom/internal/domain/payment/valueobjects"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// CancelIntentUseCase voids a pending payment. The processor cancels
// first; the local record follows only when that succeeds.
type CancelIntentUseCase struct {
	paymentRepo   domainPayment.Repository
	billingClient billing.Client
	logger        logger.Interface
}

func NewCancelIntentUseCase(
	paymentRepo domainPayment.Repository,
	billingClient billing.Client,
	logger logger.Interface,
) *CancelIntentUseCase {
	return &CancelIntentUseCase{
		paymentRepo:   paymentRepo,
		billingClient: billingClient,
		logger:        logger,
	}
}

func (uc *CancelIntentUseCase) Execute(ctx context.Context, actor Actor, paymentSID string) (*dto.PaymentResponse, error) {
	paymentEntity, err := loadOwnPayment(ctx, uc.paymentRepo, actor, paymentSID)
	if err != nil {
		return nil, err
	}
	if paymentEntity.Status() != vo.PaymentStatusPending {
		return nil, errors.NewConflictError(
			fmt.Sprintf("payment is %s, only pending payments can be cancelled", paymentEntity.Status()))
	}

	if _, err := uc.billingClient.CancelIntent(ctx, paymentEntity.ProcessorRef()); err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	if err := paymentEntity.Cancel(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.paymentRepo.Update(ctx, paymentEntity); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	uc.logger.Infow("payment cancelled", "id", paymentEntity.SID(), "order_no", paymentEntity.OrderNo())
	return toPaymentResponse(paymentEntity), nil
}
