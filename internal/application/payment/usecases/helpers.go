package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainPayment "github.com/webloom-dev/webloom/internal/domain/payment"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
)

// Actor aliases the access actor so handlers import one package.
type Actor = access.Actor

func toPaymentResponse(p *domainPayment.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:             p.SID(),
		OrderNo:        p.OrderNo(),
		Amount:         p.Amount().Amount(),
		RefundedAmount: p.RefundedAmount().Amount(),
		Currency:       p.Amount().Currency(),
		Status:         p.Status().String(),
		Method:         p.Method().String(),
		Type:           p.PaymentType().String(),
		Description:    p.Description(),
		PaidAt:         p.PaidAt(),
		RefundedAt:     p.RefundedAt(),
		CreatedAt:      p.CreatedAt(),
	}
}

// generateOrderNo builds a unique human-traceable order number, e.g.
// WL-20260115-k3f9d2m1. The unique index on order_no backstops collisions.
func generateOrderNo(now time.Time) (string, error) {
	random, err := id.Generate(8)
	if err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}
	return fmt.Sprintf("WL-%s-%s", now.UTC().Format("20060102"), random), nil
}

// ensureBillingCustomer resolves the processor-side customer reference,
// creating it on first use and persisting it on the user.
func ensureBillingCustomer(
	ctx context.Context,
	client billing.Client,
	userRepo domainUser.Repository,
	user *domainUser.User,
) (string, error) {
	if ref := user.BillingCustomerID(); ref != nil && *ref != "" {
		return *ref, nil
	}

	ref, err := client.EnsureCustomer(ctx, user.Email().String())
	if err != nil {
		return "", errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	user.AttachBillingCustomer(ref)
	if err := userRepo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("failed to save billing customer: %w", err)
	}
	return ref, nil
}

// loadUser fetches the actor's user row or fails with not found.
func loadUser(ctx context.Context, userRepo domainUser.Repository, userID uint) (*domainUser.User, error) {
	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return user, nil
}

// loadOwnPayment fetches a payment and verifies it belongs to the actor.
func loadOwnPayment(ctx context.Context, repo domainPayment.Repository, actor Actor, paymentSID string) (*domainPayment.Payment, error) {
	p, err := repo.GetBySID(ctx, paymentSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	if p == nil || !authorization.CanAccessResourceByOwnerID(actor.UserID, actor.Role, p.UserID()) {
		// hide other users' payments entirely
		return nil, errors.NewNotFoundError("payment not found")
	}
	return p, nil
}
