package payment

import (
	"fmt"
	"time"

	vo "github.com/webloom-dev/webloom/internal/domain/payment/valueobjects"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
)

// Payment records one charge against a user. Status mutations always go
// through the state machine in vo.PaymentStatus; the processor is called
// first and the local record mutated only after it succeeds.
type Payment struct {
	id      uint
	sid     string
	userID  uint
	orderNo string

	amount         vo.Money
	refundedAmount vo.Money
	status         vo.PaymentStatus
	method         vo.PaymentMethod
	paymentType    vo.PaymentType

	// processorRef is the processor-side intent or charge identifier.
	processorRef string
	description  string
	metadata     map[string]interface{}

	paidAt     *time.Time
	refundedAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewPayment creates a pending payment for the given order.
func NewPayment(
	userID uint,
	orderNo string,
	amount vo.Money,
	method vo.PaymentMethod,
	paymentType vo.PaymentType,
	sidGen func() (string, error),
) (*Payment, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if orderNo == "" {
		return nil, fmt.Errorf("order number is required")
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}
	if !paymentType.IsValid() {
		return nil, fmt.Errorf("invalid payment type: %s", paymentType)
	}

	sid, err := sidGen()
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment ID: %w", err)
	}

	zero, _ := vo.NewMoney(0, amount.Currency())
	now := biztime.NowUTC()
	return &Payment{
		sid:            sid,
		userID:         userID,
		orderNo:        orderNo,
		amount:         amount,
		refundedAmount: zero,
		status:         vo.PaymentStatusPending,
		method:         method,
		paymentType:    paymentType,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// AttachProcessorRef records the processor-side identifier.
func (p *Payment) AttachProcessorRef(ref string) {
	p.processorRef = ref
	p.touch()
}

// SetDescription sets the human-readable purpose line.
func (p *Payment) SetDescription(desc string) {
	p.description = desc
	p.touch()
}

// SetMetadata replaces the metadata blob.
func (p *Payment) SetMetadata(metadata map[string]interface{}) {
	p.metadata = metadata
	p.touch()
}

// Complete transitions pending to completed and stamps paidAt.
func (p *Payment) Complete(now time.Time) error {
	if err := p.transition(vo.PaymentStatusCompleted); err != nil {
		return err
	}
	paid := biztime.ToUTC(now)
	p.paidAt = &paid
	return nil
}

// Fail transitions pending to failed.
func (p *Payment) Fail() error {
	return p.transition(vo.PaymentStatusFailed)
}

// Cancel transitions pending to cancelled.
func (p *Payment) Cancel() error {
	return p.transition(vo.PaymentStatusCancelled)
}

// Refund records a refund of the given amount. Partial refunds accumulate
// and keep the payment completed; the status flips to refunded only when
// the full amount has been returned.
func (p *Payment) Refund(amount vo.Money, now time.Time) error {
	if p.status != vo.PaymentStatusCompleted {
		return fmt.Errorf("only completed payments can be refunded, current status: %s", p.status)
	}
	if amount.IsZero() {
		return fmt.Errorf("refund amount must be positive")
	}

	total, err := p.refundedAmount.Add(amount)
	if err != nil {
		return err
	}
	if p.amount.LessThan(total) {
		return fmt.Errorf("refund exceeds remaining amount: %s of %s already refunded", p.refundedAmount, p.amount)
	}

	p.refundedAmount = total
	refunded := biztime.ToUTC(now)
	p.refundedAt = &refunded
	if total.Equals(p.amount) {
		return p.transition(vo.PaymentStatusRefunded)
	}
	p.touch()
	return nil
}

func (p *Payment) transition(target vo.PaymentStatus) error {
	if !p.status.CanTransitionTo(target) {
		return fmt.Errorf("invalid status transition: %s -> %s", p.status, target)
	}
	p.status = target
	p.touch()
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (p *Payment) IsTerminal() bool {
	return p.status == vo.PaymentStatusFailed ||
		p.status == vo.PaymentStatusRefunded ||
		p.status == vo.PaymentStatusCancelled
}

func (p *Payment) touch() {
	p.updatedAt = biztime.NowUTC()
	p.version++
}

// SetID sets the numeric ID after persistence.
func (p *Payment) SetID(id uint) {
	p.id = id
}

func (p *Payment) ID() uint                          { return p.id }
func (p *Payment) SID() string                       { return p.sid }
func (p *Payment) UserID() uint                      { return p.userID }
func (p *Payment) OrderNo() string                   { return p.orderNo }
func (p *Payment) Amount() vo.Money                  { return p.amount }
func (p *Payment) RefundedAmount() vo.Money          { return p.refundedAmount }
func (p *Payment) Status() vo.PaymentStatus          { return p.status }
func (p *Payment) Method() vo.PaymentMethod          { return p.method }
func (p *Payment) PaymentType() vo.PaymentType       { return p.paymentType }
func (p *Payment) ProcessorRef() string              { return p.processorRef }
func (p *Payment) Description() string               { return p.description }
func (p *Payment) Metadata() map[string]interface{}  { return p.metadata }
func (p *Payment) PaidAt() *time.Time                { return p.paidAt }
func (p *Payment) RefundedAt() *time.Time            { return p.refundedAt }
func (p *Payment) Version() int                      { return p.version }
func (p *Payment) CreatedAt() time.Time              { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time              { return p.updatedAt }

// ReconstructPayment rebuilds a payment from persistence.
func ReconstructPayment(
	id uint,
	sid string,
	userID uint,
	orderNo string,
	amount, refundedAmount vo.Money,
	status vo.PaymentStatus,
	method vo.PaymentMethod,
	paymentType vo.PaymentType,
	processorRef, description string,
	metadata map[string]interface{},
	paidAt, refundedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Payment, error) {
	if id == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", status)
	}

	return &Payment{
		id:             id,
		sid:            sid,
		userID:         userID,
		orderNo:        orderNo,
		amount:         amount,
		refundedAmount: refundedAmount,
		status:         status,
		method:         method,
		paymentType:    paymentType,
		processorRef:   processorRef,
		description:    description,
		metadata:       metadata,
		paidAt:         paidAt,
		refundedAt:     refundedAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}
