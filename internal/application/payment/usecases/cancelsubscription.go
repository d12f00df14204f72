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

// CancelSubscriptionUseCase ends the user's subscription. The processor
// cancels first; the local reference is cleared only after that succeeds.
type CancelSubscriptionUseCase struct {
	userRepo      domainUser.Repository
	billingClient billing.Client
	logger        logger.Interface
}

func NewCancelSubscriptionUseCase(
	userRepo domainUser.Repository,
	billingClient billing.Client,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		userRepo:      userRepo,
		billingClient: billingClient,
		logger:        logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, actor Actor) (*dto.SubscriptionResponse, error) {
	user, err := loadUser(ctx, uc.userRepo, actor.UserID)
	if err != nil {
		return nil, err
	}
	ref := user.BillingSubscriptionID()
	if ref == nil || *ref == "" {
		return nil, errors.NewNotFoundError("no active subscription")
	}

	subscription, err := uc.billingClient.CancelSubscription(ctx, *ref)
	if err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	user.DetachBillingSubscription()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save subscription change: %w", err)
	}

	uc.logger.Infow("subscription cancelled", "user_id", user.SID(), "ref", subscription.Ref)
	return &dto.SubscriptionResponse{
		Ref:              subscription.Ref,
		Status:           subscription.Status,
		PlanCode:         subscription.PlanCode,
		CurrentPeriodEnd: subscription.CurrentPeriodEnd,
	}, nil
}
