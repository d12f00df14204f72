package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	domainCredits "github.com/webloom-dev/webloom/internal/domain/credits"
	domainPayment "github.com/webloom-dev/webloom/internal/domain/payment"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	sharedConfig "github.com/webloom-dev/webloom/internal/shared/config"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

type memPaymentRepo struct {
	domainPayment.Repository
	payments []*domainPayment.Payment
	nextID   uint
}

func (m *memPaymentRepo) Create(_ context.Context, p *domainPayment.Payment) error {
	m.nextID++
	p.SetID(m.nextID)
	m.payments = append(m.payments, p)
	return nil
}

func (m *memPaymentRepo) Update(_ context.Context, _ *domainPayment.Payment) error {
	return nil
}

func (m *memPaymentRepo) GetBySID(_ context.Context, sid string) (*domainPayment.Payment, error) {
	for _, p := range m.payments {
		if p.SID() == sid {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPaymentRepo) ListByUser(_ context.Context, userID uint, offset, limit int) ([]*domainPayment.Payment, int64, error) {
	var out []*domainPayment.Payment
	for _, p := range m.payments {
		if p.UserID() == userID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

type memUserRepo struct {
	domainUser.Repository
	users map[uint]*domainUser.User
}

func (m *memUserRepo) GetByID(_ context.Context, id uint) (*domainUser.User, error) {
	return m.users[id], nil
}

func (m *memUserRepo) Update(_ context.Context, _ *domainUser.User) error {
	return nil
}

type memLedgerRepo struct {
	domainCredits.Repository
	ledgers map[uint]*domainCredits.Ledger
}

func (m *memLedgerRepo) GrantAtomic(_ context.Context, userID uint, n int64) error {
	l := m.ledgers[userID]
	if l == nil {
		return fmt.Errorf("no ledger for user %d", userID)
	}
	return l.Grant(n)
}

// fakeBilling scripts processor responses and records calls.
type fakeBilling struct {
	billing.Client
	failCreate    bool
	confirmStatus string
	refundCalls   []billing.RefundRequest
	subscription  *billing.Subscription
}

func (f *fakeBilling) EnsureCustomer(_ context.Context, _ string) (string, error) {
	return "cus_test", nil
}

func (f *fakeBilling) CreateIntent(_ context.Context, req billing.CreateIntentRequest) (*billing.Intent, error) {
	if f.failCreate {
		return nil, fmt.Errorf("card declined")
	}
	return &billing.Intent{
		Ref:          "pi_" + req.OrderNo,
		Status:       billing.IntentStatusRequiresConfirmation,
		Amount:       req.Amount,
		Currency:     req.Currency,
		ClientSecret: "secret_" + req.OrderNo,
	}, nil
}

func (f *fakeBilling) ConfirmIntent(_ context.Context, ref string) (*billing.Intent, error) {
	status := f.confirmStatus
	if status == "" {
		status = billing.IntentStatusSucceeded
	}
	return &billing.Intent{Ref: ref, Status: status}, nil
}

func (f *fakeBilling) CancelIntent(_ context.Context, ref string) (*billing.Intent, error) {
	return &billing.Intent{Ref: ref, Status: billing.IntentStatusCanceled}, nil
}

func (f *fakeBilling) Refund(_ context.Context, req billing.RefundRequest) (*billing.Refund, error) {
	f.refundCalls = append(f.refundCalls, req)
	return &billing.Refund{Ref: "re_1", Status: "succeeded", Amount: req.Amount}, nil
}

func (f *fakeBilling) CreateSubscription(_ context.Context, req billing.SubscriptionRequest) (*billing.Subscription, error) {
	f.subscription = &billing.Subscription{
		Ref:              "sub_test",
		Status:           "active",
		PlanCode:         req.PlanCode,
		CurrentPeriodEnd: time.Now().UTC().AddDate(0, 1, 0),
	}
	return f.subscription, nil
}

func (f *fakeBilling) CancelSubscription(_ context.Context, ref string) (*billing.Subscription, error) {
	return &billing.Subscription{Ref: ref, Status: "canceled"}, nil
}

type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type paymentFixture struct {
	paymentRepo *memPaymentRepo
	userRepo    *memUserRepo
	ledgerRepo  *memLedgerRepo
	billing     *fakeBilling
	create      *CreateIntentUseCase
	actor       Actor
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	addr, err := vo.NewEmail("payer@example.com")
	require.NoError(t, err)
	user, err := domainUser.NewUser(addr, "$2a$12$hash", domainUser.PlanLimits{
		MaxSites: 10, MaxPagesPerSite: 50, MaxSectionsPerPage: 50,
	}, id.NewUserID)
	require.NoError(t, err)
	user.SetID(1)

	ledger, err := domainCredits.NewLedger(1, 20, domainCredits.ResetMonthly)
	require.NoError(t, err)
	ledger.SetID(1)

	paymentRepo := &memPaymentRepo{}
	userRepo := &memUserRepo{users: map[uint]*domainUser.User{1: user}}
	ledgerRepo := &memLedgerRepo{ledgers: map[uint]*domainCredits.Ledger{1: ledger}}
	fb := &fakeBilling{}

	cfg := sharedConfig.BillingConfig{Currency: "USD"}
	create := NewCreateIntentUseCase(paymentRepo, userRepo, fb, cfg, logger.NewNop())

	return &paymentFixture{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		ledgerRepo:  ledgerRepo,
		billing:     fb,
		create:      create,
		actor:       Actor{UserID: 1, Role: authorization.RoleUser},
	}
}

func TestCreateIntent(t *testing.T) {
	fx := newPaymentFixture(t)
	ctx := context.Background()

	resp, err := fx.create.Execute(ctx, fx.actor, dto.CreateIntentRequest{
		Amount: 1500, Method: "card", Type: "one_time", Description: "Pro template",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(1500), resp.Amount)
	assert.Equal(t, "USD", resp.Currency)
	assert.NotEmpty(t, resp.ClientSecret)
	assert.Contains(t, resp.OrderNo, "WL-")
}

func TestCreateIntent_ProcessorRejection(t *testing.T) {
	fx := newPaymentFixture(t)
	fx.billing.failCreate = true

	_, err := fx.create.Execute(context.Background(), fx.actor, dto.CreateIntentRequest{
		Amount: 1500, Method: "card", Type: "one_time",
	})
	assert.True(t, errors.IsBadRequestError(err))
	// nothing persisted when the processor says no
	assert.Empty(t, fx.paymentRepo.payments)
}

func TestConfirmIntent_GrantsPurchasedCredits(t *testing.T) {
	fx := newPaymentFixture(t)
	ctx := context.Background()

	purchase := NewPurchaseCreditsUseCase(fx.create, logger.NewNop())
	resp, err := purchase.Execute(ctx, fx.actor, dto.PurchaseCreditsRequest{Credits: 100, Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, 100*CentsPerCredit, resp.Amount)
	assert.Equal(t, "credit_purchase", resp.Type)

	confirm := NewConfirmIntentUseCase(fx.paymentRepo, fx.ledgerRepo, fx.billing, passTxManager{}, logger.NewNop())
	confirmed, err := confirm.Execute(ctx, fx.actor, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", confirmed.Status)
	assert.NotNil(t, confirmed.PaidAt)

	assert.Equal(t, int64(120), fx.ledgerRepo.ledgers[1].Credits())

	// a second confirm is rejected, credits are not granted twice
	_, err = confirm.Execute(ctx, fx.actor, resp.ID)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, int64(120), fx.ledgerRepo.ledgers[1].Credits())
}

func TestCancelIntent(t *testing.T) {
	fx := newPaymentFixture(t)
	ctx := context.Background()

	resp, err := fx.create.Execute(ctx, fx.actor, dto.CreateIntentRequest{
		Amount: 900, Method: "card", Type: "one_time",
	})
	require.NoError(t, err)

	cancel := NewCancelIntentUseCase(fx.paymentRepo, fx.billing, logger.NewNop())
	cancelled, err := cancel.Execute(ctx, fx.actor, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, err = cancel.Execute(ctx, fx.actor, resp.ID)
	assert.True(t, errors.IsConflictError(err))
}

func TestRefundPayment_PartialThenFull(t *testing.T) {
	fx := newPaymentFixture(t)
	ctx := context.Background()

	resp, err := fx.create.Execute(ctx, fx.actor, dto.CreateIntentRequest{
		Amount: 1000, Method: "card", Type: "one_time",
	})
	require.NoError(t, err)

	confirm := NewConfirmIntentUseCase(fx.paymentRepo, fx.ledgerRepo, fx.billing, passTxManager{}, logger.NewNop())
	_, err = confirm.Execute(ctx, fx.actor, resp.ID)
	require.NoError(t, err)

	refund := NewRefundPaymentUseCase(fx.paymentRepo, fx.billing, logger.NewNop())

	partial, err := refund.Execute(ctx, fx.actor, resp.ID, dto.RefundPaymentRequest{Amount: 300})
	require.NoError(t, err)
	assert.Equal(t, "completed", partial.Status)
	assert.Equal(t, int64(300), partial.RefundedAmount)

	// amount zero refunds the remainder and flips the status
	full, err := refund.Execute(ctx, fx.actor, resp.ID, dto.RefundPaymentRequest{})
	require.NoError(t, err)
	assert.Equal(t, "refunded", full.Status)
	assert.Equal(t, int64(1000), full.RefundedAmount)

	require.Len(t, fx.billing.refundCalls, 2)
	assert.Equal(t, int64(700), fx.billing.refundCalls[1].Amount)

	_, err = refund.Execute(ctx, fx.actor, resp.ID, dto.RefundPaymentRequest{Amount: 100})
	assert.True(t, errors.IsConflictError(err))
}

func TestRefundPayment_OverLimitNeverReachesProcessor(t *testing.T) {
	fx := newPaymentFixture(t)
	ctx := context.Background()

	resp, err := fx.create.Execute(ctx, fx.actor, dto.CreateIntentRequest{
		Amount: 1000, Method: "card", Type: "one_time",
	})
	require.NoError(t, err)

	confirm := NewConfirmIntentUseCase(fx.paymentRepo, fx.ledgerRepo, fx.billing, passTxManager{}, logger.NewNop())
	_, err = confirm.Execute(ctx, fx.actor, resp.ID)
	require.NoError(t, err)

	refund := NewRefundPaymentUseCase(fx.paymentRepo, fx.billing, logger.NewNop())

	// more than the remaining amount is rejected locally, without moving
	// any money at the processor
	_, err = refund.Execute(ctx, fx.actor, resp.ID, dto.RefundPaymentRequest{Amount: 5000})
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, fx.billing.refundCalls)

	stored, err := refund.Execute(ctx, fx.actor, resp.ID, dto.RefundPaymentRequest{Amount: 1000})
	require.NoError(t, err)
	assert.Equal(t, "refunded", stored.Status)
	assert.Len(t, fx.billing.refundCalls, 1)
}

func TestSubscriptionLifecycle(t *testing.T) {
	fx := newPaymentFixture(t)
	ctx := context.Background()

	create := NewCreateSubscriptionUseCase(fx.userRepo, fx.billing, logger.NewNop())
	sub, err := create.Execute(ctx, fx.actor, dto.CreateSubscriptionRequest{PlanCode: "pro-monthly"})
	require.NoError(t, err)
	assert.Equal(t, "active", sub.Status)
	assert.Equal(t, "pro-monthly", sub.PlanCode)

	// double subscribe is rejected
	_, err = create.Execute(ctx, fx.actor, dto.CreateSubscriptionRequest{PlanCode: "pro-monthly"})
	assert.True(t, errors.IsConflictError(err))

	cancel := NewCancelSubscriptionUseCase(fx.userRepo, fx.billing, logger.NewNop())
	cancelled, err := cancel.Execute(ctx, fx.actor)
	require.NoError(t, err)
	assert.Equal(t, "canceled", cancelled.Status)

	_, err = cancel.Execute(ctx, fx.actor)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetPayment_HiddenFromStrangers(t *testing.T) {
	fx := newPaymentFixture(t)
	ctx := context.Background()

	resp, err := fx.create.Execute(ctx, fx.actor, dto.CreateIntentRequest{
		Amount: 500, Method: "card", Type: "one_time",
	})
	require.NoError(t, err)

	get := NewGetPaymentUseCase(fx.paymentRepo, logger.NewNop())

	_, err = get.Execute(ctx, Actor{UserID: 2, Role: authorization.RoleUser}, resp.ID)
	assert.True(t, errors.IsNotFoundError(err))

	mine, err := get.Execute(ctx, fx.actor, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, mine.ID)
}
