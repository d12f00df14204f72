// Package dto defines request and response types for payment operations.
package dto

import "time"

type CreateIntentRequest struct {
	Amount      int64  `json:"amount" binding:"required,min=1"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
	Method      string `json:"method" binding:"required,oneof=card paypal bank_transfer balance external"`
	Type        string `json:"type" binding:"required,oneof=subscription one_time credit_purchase"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

type PurchaseCreditsRequest struct {
	Credits int64  `json:"credits" binding:"required,min=1,max=100000"`
	Method  string `json:"method" binding:"required,oneof=card paypal bank_transfer balance external"`
}

type RefundPaymentRequest struct {
	// Amount in cents; zero refunds the full remaining amount.
	Amount int64  `json:"amount" binding:"omitempty,min=1"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type CreateSubscriptionRequest struct {
	PlanCode   string `json:"plan_code" binding:"required"`
	CouponCode string `json:"coupon_code" binding:"omitempty"`
}

type ApplyCouponRequest struct {
	CouponCode string `json:"coupon_code" binding:"required"`
}

type AttachPaymentMethodRequest struct {
	MethodRef string `json:"method_ref" binding:"required"`
}

type PaymentResponse struct {
	ID             string     `json:"id"`
	OrderNo        string     `json:"order_no"`
	Amount         int64      `json:"amount"`
	RefundedAmount int64      `json:"refunded_amount"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	Method         string     `json:"method"`
	Type           string     `json:"type"`
	Description    string     `json:"description,omitempty"`
	ClientSecret   string     `json:"client_secret,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	RefundedAt     *time.Time `json:"refunded_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type SubscriptionResponse struct {
	Ref              string    `json:"ref"`
	Status           string    `json:"status"`
	PlanCode         string    `json:"plan_code"`
	CurrentPeriodEnd time.Time `json:"current_period_end"`
}

type CouponResponse struct {
	CouponCode     string `json:"coupon_code"`
	PercentOff     int    `json:"percent_off,omitempty"`
	AmountOffCents int64  `json:"amount_off_cents,omitempty"`
}

type InvoiceResponse struct {
	Ref       string     `json:"ref"`
	Number    string     `json:"number"`
	Amount    int64      `json:"amount"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	IssuedAt  time.Time  `json:"issued_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	HostedURL string     `json:"hosted_url,omitempty"`
}

type PaymentMethodResponse struct {
	Ref      string `json:"ref"`
	Type     string `json:"type"`
	Brand    string `json:"brand,omitempty"`
	Last4    string `json:"last4,omitempty"`
	ExpMonth int    `json:"exp_month,omitempty"`
	ExpYear  int    `json:"exp_year,omitempty"`
	Default  bool   `json:"default"`
}
