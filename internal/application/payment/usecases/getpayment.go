package usecases

import (
	"context"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainPayment "github.com/webloom-dev/webloom/internal/domain/payment"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// GetPaymentUseCase returns one of the caller's payments.
type GetPaymentUseCase struct {
	paymentRepo domainPayment.Repository
	logger      logger.Interface
}

func NewGetPaymentUseCase(paymentRepo domainPayment.Repository, logger logger.Interface) *GetPaymentUseCase {
	return &GetPaymentUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *GetPaymentUseCase) Execute(ctx context.Context, actor Actor, paymentSID string) (*dto.PaymentResponse, error) {
	paymentEntity, err := loadOwnPayment(ctx, uc.paymentRepo, actor, paymentSID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(paymentEntity), nil
}
