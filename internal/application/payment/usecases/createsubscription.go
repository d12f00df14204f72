package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// CreateSubscriptionUseCase subscribes the user to a plan. The processor
// creates the subscription first; the reference is stored on the user only
// after that succeeds.
type CreateSubscriptionUseCase struct {
	userRepo      domainUser.Repository
	billingClient billing.Client
	logger        logger.Interface
}

func NewCreateSubscriptionUseCase(
	userRepo domainUser.Repository,
	billingClient billing.Client,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		userRepo:      userRepo,
		billingClient: billingClient,
		logger:        logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, actor Actor, request dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	user, err := loadUser(ctx, uc.userRepo, actor.UserID)
	if err != nil {
		return nil, err
	}
	if ref := user.BillingSubscriptionID(); ref != nil && *ref != "" {
		return nil, errors.NewConflictError("user already has an active subscription")
	}

	customerRef, err := ensureBillingCustomer(ctx, uc.billingClient, uc.userRepo, user)
	if err != nil {
		return nil, err
	}

	subscription, err := uc.billingClient.CreateSubscription(ctx, billing.SubscriptionRequest{
		CustomerRef: customerRef,
		PlanCode:    request.PlanCode,
		CouponCode:  request.CouponCode,
	})
	if err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	user.AttachBillingSubscription(subscription.Ref)
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("subscription created",
		"user_id", user.SID(), "plan", request.PlanCode, "ref", subscription.Ref)
	return &dto.SubscriptionResponse{
		Ref:              subscription.Ref,
		Status:           subscription.Status,
		PlanCode:         subscription.PlanCode,
		CurrentPeriodEnd: subscription.CurrentPeriodEnd,
	}, nil
}
