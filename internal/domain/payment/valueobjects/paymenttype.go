package valueobjects

import "fmt"

// PaymentType classifies what a payment was for.
type PaymentType string

const (
	PaymentTypeSubscription   PaymentType = "subscription"
	PaymentTypeOneTime        PaymentType = "one_time"
	PaymentTypeCreditPurchase PaymentType = "credit_purchase"
	PaymentTypeRefund         PaymentType = "refund"
)

func (t PaymentType) String() string {
	return string(t)
}

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeSubscription, PaymentTypeOneTime,
		PaymentTypeCreditPurchase, PaymentTypeRefund:
		return true
	}
	return false
}

func ParsePaymentType(s string) (PaymentType, error) {
	typ := PaymentType(s)
	if !typ.IsValid() {
		return "", fmt.Errorf("invalid payment type: %q", s)
	}
	return typ, nil
}
