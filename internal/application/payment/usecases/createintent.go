package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainPayment "github.com/webloom-dev/webloom/internal/domain/payment"
	vo "github.com/webloom-dev/webloom/internal/domain/payment/valueobjects"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	sharedConfig "github.com/webloom-dev/webloom/internal/shared/config"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// CreateIntentUseCase opens a payment with the processor and records it
// locally as pending. The processor is called first; nothing is persisted
// when it rejects the request.
type CreateIntentUseCase struct {
	paymentRepo   domainPayment.Repository
	userRepo      domainUser.Repository
	billingClient billing.Client
	billingCfg    sharedConfig.BillingConfig
	logger        logger.Interface
}

func NewCreateIntentUseCase(
	paymentRepo domainPayment.Repository,
	userRepo domainUser.Repository,
	billingClient billing.Client,
	billingCfg sharedConfig.BillingConfig,
	logger logger.Interface,
) *CreateIntentUseCase {
	return &CreateIntentUseCase{
		paymentRepo:   paymentRepo,
		userRepo:      userRepo,
		billingClient: billingClient,
		billingCfg:    billingCfg,
		logger:        logger,
	}
}

func (uc *CreateIntentUseCase) Execute(ctx context.Context, actor Actor, request dto.CreateIntentRequest) (*dto.PaymentResponse, error) {
	user, err := loadUser(ctx, uc.userRepo, actor.UserID)
	if err != nil {
		return nil, err
	}

	currency := request.Currency
	if currency == "" {
		currency = uc.billingCfg.Currency
	}
	amount, err := vo.NewMoney(request.Amount, currency)
	if err != nil {
		return nil, errors.NewValidationError("invalid amount", err.Error())
	}
	method, err := vo.ParsePaymentMethod(request.Method)
	if err != nil {
		return nil, errors.NewValidationError("invalid payment method", err.Error())
	}
	paymentType, err := vo.ParsePaymentType(request.Type)
	if err != nil {
		return nil, errors.NewValidationError("invalid payment type", err.Error())
	}

	return uc.open(ctx, user, amount, method, paymentType, request.Description, nil)
}

// open runs the shared create flow: ensure customer, create the processor
// intent, then persist the pending payment carrying the processor ref.
func (uc *CreateIntentUseCase) open(
	ctx context.Context,
	user *domainUser.User,
	amount vo.Money,
	method vo.PaymentMethod,
	paymentType vo.PaymentType,
	description string,
	metadata map[string]interface{},
) (*dto.PaymentResponse, error) {
	customerRef, err := ensureBillingCustomer(ctx, uc.billingClient, uc.userRepo, user)
	if err != nil {
		return nil, err
	}

	orderNo, err := generateOrderNo(biztime.NowUTC())
	if err != nil {
		return nil, err
	}

	intent, err := uc.billingClient.CreateIntent(ctx, billing.CreateIntentRequest{
		OrderNo:     orderNo,
		CustomerRef: customerRef,
		Amount:      amount.Amount(),
		Currency:    amount.Currency(),
		Description: description,
	})
	if err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	paymentEntity, err := domainPayment.NewPayment(user.ID(), orderNo, amount, method, paymentType, id.NewPaymentID)
	if err != nil {
		return nil, errors.NewValidationError("invalid payment", err.Error())
	}
	paymentEntity.AttachProcessorRef(intent.Ref)
	if description != "" {
		paymentEntity.SetDescription(description)
	}
	if metadata != nil {
		paymentEntity.SetMetadata(metadata)
	}

	if err := uc.paymentRepo.Create(ctx, paymentEntity); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	uc.logger.Infow("payment intent created",
		"id", paymentEntity.SID(), "order_no", orderNo, "amount", amount.String())

	response := toPaymentResponse(paymentEntity)
	response.ClientSecret = intent.ClientSecret
	return response, nil
}
