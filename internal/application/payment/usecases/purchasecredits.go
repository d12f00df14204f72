package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	vo "github.com/webloom-dev/webloom/internal/domain/payment/valueobjects"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// CentsPerCredit is the flat price of one AI credit.
const CentsPerCredit int64 = 10

// PurchaseCreditsUseCase opens a credit purchase intent. The bought credit
// count travels in the payment metadata and is granted when the intent is
// confirmed.
type PurchaseCreditsUseCase struct {
	createIntent *CreateIntentUseCase
	logger       logger.Interface
}

func NewPurchaseCreditsUseCase(createIntent *CreateIntentUseCase, logger logger.Interface) *PurchaseCreditsUseCase {
	return &PurchaseCreditsUseCase{
		createIntent: createIntent,
		logger:       logger,
	}
}

func (uc *PurchaseCreditsUseCase) Execute(ctx context.Context, actor Actor, request dto.PurchaseCreditsRequest) (*dto.PaymentResponse, error) {
	user, err := loadUser(ctx, uc.createIntent.userRepo, actor.UserID)
	if err != nil {
		return nil, err
	}

	method, err := vo.ParsePaymentMethod(request.Method)
	if err != nil {
		return nil, errors.NewValidationError("invalid payment method", err.Error())
	}
	amount, err := vo.NewMoney(request.Credits*CentsPerCredit, uc.createIntent.billingCfg.Currency)
	if err != nil {
		return nil, errors.NewValidationError("invalid amount", err.Error())
	}

	description := fmt.Sprintf("Purchase of %d AI credits", request.Credits)
	metadata := map[string]interface{}{"credits": request.Credits}

	return uc.createIntent.open(ctx, user, amount, method, vo.PaymentTypeCreditPurchase, description, metadata)
}
