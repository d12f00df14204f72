package payment

import (
	"context"
)

// Repository is the persistence port for payments. Lookups return
// (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetBySID(ctx context.Context, sid string) (*Payment, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*Payment, error)
	// ListByUser returns the user's payments newest first.
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*Payment, int64, error)
}
