// Package dto defines request and response types for credit operations.
package dto

import "time"

type ConsumeCreditsRequest struct {
	Amount int64  `json:"amount" binding:"required,min=1"`
	Reason string `json:"reason" binding:"omitempty,max=200"`
}

type GrantCreditsRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,min=1"`
}

type UpdateResetFrequencyRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Frequency string `json:"frequency" binding:"required,oneof=daily weekly monthly yearly never"`
}

type BalanceResponse struct {
	Credits     int64      `json:"credits"`
	UsedCredits int64      `json:"used_credits"`
	Remaining   int64      `json:"remaining"`
	Frequency   string     `json:"frequency"`
	LastResetAt time.Time  `json:"last_reset_at"`
	NextResetAt *time.Time `json:"next_reset_at,omitempty"`
}
