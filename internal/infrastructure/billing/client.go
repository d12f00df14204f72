package billing

import (
	"context"
	"time"
)

// Client is the interface to the external payment processor. All amounts
// are in the smallest currency unit (cents). Implementations never touch
// local state; callers persist results only after the processor call
// succeeds.
type Client interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*Intent, error)
	ConfirmIntent(ctx context.Context, intentRef string) (*Intent, error)
	CancelIntent(ctx context.Context, intentRef string) (*Intent, error)
	Refund(ctx context.Context, req RefundRequest) (*Refund, error)

	CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionRef string) (*Subscription, error)

	ApplyCoupon(ctx context.Context, req CouponRequest) (*CouponResult, error)
	ListInvoices(ctx context.Context, customerRef string, limit int) ([]Invoice, error)
	ListPaymentMethods(ctx context.Context, customerRef string) ([]PaymentMethod, error)
	AttachPaymentMethod(ctx context.Context, customerRef, methodRef string) (*PaymentMethod, error)
	EnsureCustomer(ctx context.Context, email string) (string, error)
}

// CreateIntentRequest asks the processor to prepare a charge.
type CreateIntentRequest struct {
	OrderNo     string
	CustomerRef string
	Amount      int64
	Currency    string
	Description string
	Metadata    map[string]string
}

// Intent mirrors the processor-side payment intent.
type Intent struct {
	Ref          string
	Status       string // requires_confirmation, succeeded, canceled
	Amount       int64
	Currency     string
	ClientSecret string
}

type RefundRequest struct {
	IntentRef string
	Amount    int64
	Reason    string
}

type Refund struct {
	Ref    string
	Status string
	Amount int64
}

type SubscriptionRequest struct {
	CustomerRef string
	PlanCode    string
	CouponCode  string
}

type Subscription struct {
	Ref              string
	Status           string // active, canceled
	PlanCode         string
	CurrentPeriodEnd time.Time
}

type CouponRequest struct {
	SubscriptionRef string
	CouponCode      string
}

type CouponResult struct {
	CouponCode     string
	PercentOff     int
	AmountOffCents int64
}

type Invoice struct {
	Ref       string
	Number    string
	Amount    int64
	Currency  string
	Status    string
	IssuedAt  time.Time
	PaidAt    *time.Time
	HostedURL string
}

type PaymentMethod struct {
	Ref      string
	Type     string // card, paypal
	Brand    string
	Last4    string
	ExpMonth int
	ExpYear  int
	Default  bool
}

// Intent status values returned by the processor.
const (
	IntentStatusRequiresConfirmation = "requires_confirmation"
	IntentStatusSucceeded            = "succeeded"
	IntentStatusCanceled             = "canceled"
)
