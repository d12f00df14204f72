package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainPayment "github.com/webloom-dev/webloom/internal/domain/payment"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/utils"
)

// ListHistoryUseCase pages through the caller's payments, newest first.
type ListHistoryUseCase struct {
	paymentRepo domainPayment.Repository
	logger      logger.Interface
}

func NewListHistoryUseCase(paymentRepo domainPayment.Repository, logger logger.Interface) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, actor Actor, pagination utils.Pagination) ([]*dto.PaymentResponse, int64, error) {
	payments, total, err := uc.paymentRepo.ListByUser(ctx, actor.UserID, pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, toPaymentResponse(p))
	}
	return responses, total, nil
}
