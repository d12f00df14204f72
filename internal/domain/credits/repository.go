package credits

import "context"

// Repository is the persistence port for credit ledgers. GetByUserID
// returns (nil, nil) when the user has no ledger.
type Repository interface {
	Create(ctx context.Context, l *Ledger) error
	Update(ctx context.Context, l *Ledger) error
	GetByUserID(ctx context.Context, userID uint) (*Ledger, error)
	// ConsumeAtomic spends n credits with a single conditional update,
	// returning false when the balance is insufficient. Safe under
	// concurrent spends.
	ConsumeAtomic(ctx context.Context, userID uint, n int64) (bool, error)
	// GrantAtomic raises the allowance by n with a single update.
	GrantAtomic(ctx context.Context, userID uint, n int64) error
}
