package valueobjects

import "fmt"

// PaymentMethod identifies how the user paid.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodPaypal   PaymentMethod = "paypal"
	PaymentMethodBank     PaymentMethod = "bank_transfer"
	PaymentMethodBalance  PaymentMethod = "balance"
	PaymentMethodExternal PaymentMethod = "external"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPaypal, PaymentMethodBank,
		PaymentMethodBalance, PaymentMethodExternal:
		return true
	}
	return false
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if !method.IsValid() {
		return "", fmt.Errorf("invalid payment method: %q", s)
	}
	return method, nil
}
