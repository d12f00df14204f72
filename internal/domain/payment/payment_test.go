package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/webloom-dev/webloom/internal/domain/payment/valueobjects"
	"github.com/webloom-dev/webloom/internal/shared/id"
)

func newTestPayment(t *testing.T) *Payment {
	t.Helper()
	p, err := NewPayment(1, "ord-1001", vo.MustMoney(2500, "USD"),
		vo.PaymentMethodCard, vo.PaymentTypeCreditPurchase, id.NewPaymentID)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	p := newTestPayment(t)

	assert.NotEmpty(t, p.SID())
	assert.Equal(t, "ord-1001", p.OrderNo())
	assert.Equal(t, vo.PaymentStatusPending, p.Status())
	assert.Equal(t, int64(2500), p.Amount().Amount())
	assert.Equal(t, int64(0), p.RefundedAmount().Amount())
	assert.Nil(t, p.PaidAt())
	assert.False(t, p.IsTerminal())
}

func TestNewPayment_Invalid(t *testing.T) {
	amount := vo.MustMoney(100, "USD")

	_, err := NewPayment(0, "ord-1", amount, vo.PaymentMethodCard, vo.PaymentTypeOneTime, id.NewPaymentID)
	assert.Error(t, err)

	_, err = NewPayment(1, "", amount, vo.PaymentMethodCard, vo.PaymentTypeOneTime, id.NewPaymentID)
	assert.Error(t, err)

	zero := vo.MustMoney(0, "USD")
	_, err = NewPayment(1, "ord-1", zero, vo.PaymentMethodCard, vo.PaymentTypeOneTime, id.NewPaymentID)
	assert.Error(t, err)
}

func TestPayment_Lifecycle(t *testing.T) {
	p := newTestPayment(t)
	now := time.Now().UTC()

	require.NoError(t, p.Complete(now))
	assert.Equal(t, vo.PaymentStatusCompleted, p.Status())
	require.NotNil(t, p.PaidAt())

	// completed cannot fail or cancel
	assert.Error(t, p.Fail())
	assert.Error(t, p.Cancel())
}

func TestPayment_CancelPending(t *testing.T) {
	p := newTestPayment(t)

	require.NoError(t, p.Cancel())
	assert.Equal(t, vo.PaymentStatusCancelled, p.Status())
	assert.True(t, p.IsTerminal())

	// terminal states never move again
	assert.Error(t, p.Complete(time.Now().UTC()))
}

func TestPayment_PartialRefund(t *testing.T) {
	p := newTestPayment(t)
	now := time.Now().UTC()
	require.NoError(t, p.Complete(now))

	require.NoError(t, p.Refund(vo.MustMoney(1000, "USD"), now))
	assert.Equal(t, vo.PaymentStatusCompleted, p.Status())
	assert.Equal(t, int64(1000), p.RefundedAmount().Amount())

	// refund beyond the remaining amount is rejected
	assert.Error(t, p.Refund(vo.MustMoney(2000, "USD"), now))

	// refunding the rest flips the status
	require.NoError(t, p.Refund(vo.MustMoney(1500, "USD"), now))
	assert.Equal(t, vo.PaymentStatusRefunded, p.Status())
	assert.True(t, p.IsTerminal())
}

func TestPayment_RefundRequiresCompleted(t *testing.T) {
	p := newTestPayment(t)
	err := p.Refund(vo.MustMoney(100, "USD"), time.Now().UTC())
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	_, err := vo.NewMoney(-1, "USD")
	assert.Error(t, err)

	_, err = vo.NewMoney(100, "US")
	assert.Error(t, err)

	m, err := vo.NewMoney(100, " usd ")
	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency())

	_, err = m.Add(vo.MustMoney(1, "EUR"))
	assert.Error(t, err)
}

func TestPaymentStatus_Transitions(t *testing.T) {
	assert.True(t, vo.PaymentStatusPending.CanTransitionTo(vo.PaymentStatusCompleted))
	assert.True(t, vo.PaymentStatusPending.CanTransitionTo(vo.PaymentStatusFailed))
	assert.True(t, vo.PaymentStatusPending.CanTransitionTo(vo.PaymentStatusCancelled))
	assert.False(t, vo.PaymentStatusPending.CanTransitionTo(vo.PaymentStatusRefunded))
	assert.True(t, vo.PaymentStatusCompleted.CanTransitionTo(vo.PaymentStatusRefunded))
	assert.False(t, vo.PaymentStatusFailed.CanTransitionTo(vo.PaymentStatusCompleted))
	assert.False(t, vo.PaymentStatusRefunded.CanTransitionTo(vo.PaymentStatusPending))
}
