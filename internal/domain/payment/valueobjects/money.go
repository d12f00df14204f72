package valueobjects

import (
	"fmt"
	"strings"
)

// Money is an amount in the smallest currency unit (cents).
type Money struct {
	amount   int64
	currency string
}

// NewMoney creates a non-negative money value. Currency is a three-letter
// ISO code, stored uppercase.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("amount cannot be negative")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, fmt.Errorf("invalid currency code: %q", currency)
	}
	return Money{amount: amount, currency: currency}, nil
}

// MustMoney panics on invalid input. For tests and constants only.
func MustMoney(amount int64, currency string) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add returns the sum. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// LessThan compares amounts. Currencies must match for a meaningful result;
// mismatched currencies report false.
func (m Money) LessThan(other Money) bool {
	return m.currency == other.currency && m.amount < other.amount
}

func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount == other.amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
