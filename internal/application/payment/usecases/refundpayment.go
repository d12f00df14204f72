package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainPayment "github.com/webloom-dev/webloom/internal/domain/payment"
	vo "github.com/webloom-dev/webloom/internal/domain/payment/valueobjects"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// RefundPaymentUseCase returns money on a completed payment. Partial
// refunds accumulate and keep the payment completed; only a full refund
// flips the status. The processor refunds first.
type RefundPaymentUseCase struct {
	paymentRepo   domainPayment.Repository
	billingClient billing.Client
	logger        logger.Interface
}

func NewRefundPaymentUseCase(
	paymentRepo domainPayment.Repository,
	billingClient billing.Client,
	logger logger.Interface,
) *RefundPaymentUseCase {
	return &RefundPaymentUseCase{
		paymentRepo:   paymentRepo,
		billingClient: billingClient,
		logger:        logger,
	}
}

func (uc *RefundPaymentUseCase) Execute(ctx context.Context, actor Actor, paymentSID string, request dto.RefundPaymentRequest) (*dto.PaymentResponse, error) {
	paymentEntity, err := loadOwnPayment(ctx, uc.paymentRepo, actor, paymentSID)
	if err != nil {
		return nil, err
	}
	if paymentEntity.Status() != vo.PaymentStatusCompleted {
		return nil, errors.NewConflictError(
			fmt.Sprintf("payment is %s, only completed payments can be refunded", paymentEntity.Status()))
	}

	remaining := paymentEntity.Amount().Amount() - paymentEntity.RefundedAmount().Amount()
	amountCents := request.Amount
	if amountCents == 0 {
		amountCents = remaining
	}
	// reject over-limit amounts before money moves at the processor
	if amountCents <= 0 || amountCents > remaining {
		return nil, errors.NewValidationError("invalid refund amount",
			fmt.Sprintf("refund must be between 1 and %d", remaining))
	}
	amount, err := vo.NewMoney(amountCents, paymentEntity.Amount().Currency())
	if err != nil {
		return nil, errors.NewValidationError("invalid refund amount", err.Error())
	}

	if _, err := uc.billingClient.Refund(ctx, billing.RefundRequest{
		IntentRef: paymentEntity.ProcessorRef(),
		Amount:    amount.Amount(),
		Reason:    request.Reason,
	}); err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	if err := paymentEntity.Refund(amount, biztime.NowUTC()); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.paymentRepo.Update(ctx, paymentEntity); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	uc.logger.Infow("payment refunded",
		"id", paymentEntity.SID(), "amount", amount.String(), "status", paymentEntity.Status())
	return toPaymentResponse(paymentEntity), nil
}
