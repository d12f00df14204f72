package usecases

import (
	"context"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ListInvoicesUseCase fetches processor-side invoices for the caller.
type ListInvoicesUseCase struct {
	userRepo      domainUser.Repository
	billingClient billing.Client
	logger        logger.Interface
}

func NewListInvoicesUseCase(
	userRepo domainUser.Repository,
	billingClient billing.Client,
	logger logger.Interface,
) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		userRepo:      userRepo,
		billingClient: billingClient,
		logger:        logger,
	}
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, actor Actor, limit int) ([]*dto.InvoiceResponse, error) {
	user, err := loadUser(ctx, uc.userRepo, actor.UserID)
	if err != nil {
		return nil, err
	}
	ref := user.BillingCustomerID()
	if ref == nil || *ref == "" {
		// no billing activity yet
		return []*dto.InvoiceResponse{}, nil
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	invoices, err := uc.billingClient.ListInvoices(ctx, *ref, limit)
	if err != nil {
		return nil, errors.NewBadRequestError("payment processor rejected the request", err.Error())
	}

	responses := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, &dto.InvoiceResponse{
			Ref:       inv.Ref,
			Number:    inv.Number,
			Amount:    inv.Amount,
			Currency:  inv.Currency,
			Status:    inv.Status,
			IssuedAt:  inv.IssuedAt,
			PaidAt:    inv.PaidAt,
			HostedURL: inv.HostedURL,
		})
	}
	return responses, nil
}
