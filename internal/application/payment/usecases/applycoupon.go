package usecases

import (
	"context"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ApplyCouponUseCase applies a discount code to the active subscription.
type ApplyCouponUseCase struct {
	userRepo      domainUser.Repository
	billingClient billing.Client
	logger        logger.Interface
}

func NewApplyCouponUseCase(
	userRepo domainUser.Repository,
	billingClient billing.Client,
	logger logger.Interface,
) *ApplyCouponUseCase {
	return &ApplyCouponUseCase{
		userRepo:      userRepo,
		billingClient: billingClient,
		logger:        logger,
	}
}

func (uc *ApplyCouponUseCase) Execute(ctx context.Context, actor Actor, request dto.ApplyCouponRequest) (*dto.CouponResponse, error) {
	user, err := loadUser(ctx, uc.userRepo, actor.UserID)
	if err != nil {
		return nil, err
	}
	ref := user.BillingSubscriptionID()
	if ref == nil || *ref == "" {
		return nil, errors.NewNotFoundError("no active subscription")
	}

	result, err := uc.billingClient.ApplyCoupon(ctx, billing.CouponRequest{
		SubscriptionRef: *ref,
		CouponCode:      request.CouponCode,
	})
	if err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	uc.logger.Infow("coupon applied", "user_id", user.SID(), "coupon", result.CouponCode)
	return &dto.CouponResponse{
		CouponCode:     result.CouponCode,
		PercentOff:     result.PercentOff,
		AmountOffCents: result.AmountOffCents,
	}, nil
}
