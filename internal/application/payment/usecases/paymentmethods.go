package usecases

import (
	"context"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// PaymentMethodsUseCase lists and attaches processor-side payment methods.
type PaymentMethodsUseCase struct {
	userRepo      domainUser.Repository
	billingClient billing.Client
	logger        logger.Interface
}

func NewPaymentMethodsUseCase(
	userRepo domainUser.Repository,
	billingClient billing.Client,
	logger logger.Interface,
) *PaymentMethodsUseCase {
	return &PaymentMethodsUseCase{
		userRepo:      userRepo,
		billingClient: billingClient,
		logger:        logger,
	}
}

func (uc *PaymentMethodsUseCase) List(ctx context.Context, actor Actor) ([]*dto.PaymentMethodResponse, error) {
	user, err := loadUser(ctx, uc.userRepo, actor.UserID)
	if err != nil {
		return nil, err
	}
	ref := user.BillingCustomerID()
	if ref == nil || *ref == "" {
		return []*dto.PaymentMethodResponse{}, nil
	}

	methods, err := uc.billingClient.ListPaymentMethods(ctx, *ref)
	if err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	responses := make([]*dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		responses = append(responses, toMethodResponse(m))
	}
	return responses, nil
}

func (uc *PaymentMethodsUseCase) Attach(ctx context.Context, actor Actor, request dto.AttachPaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	user, err := loadUser(ctx, uc.userRepo, actor.UserID)
	if err != nil {
		return nil, err
	}
	customerRef, err := ensureBillingCustomer(ctx, uc.billingClient, uc.userRepo, user)
	if err != nil {
		return nil, err
	}

	method, err := uc.billingClient.AttachPaymentMethod(ctx, customerRef, request.MethodRef)
	if err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	uc.logger.Infow("payment method attached", "user_id", user.SID(), "ref", method.Ref)
	return toMethodResponse(*method), nil
}

func toMethodResponse(m billing.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		Ref:      m.Ref,
		Type:     m.Type,
		Brand:    m.Brand,
		Last4:    m.Last4,
		ExpMonth: m.ExpMonth,
		ExpYear:  m.ExpYear,
		Default:  m.Default,
	}
}
