package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/webloom-dev/webloom/internal/domain/credits"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/mappers"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/db"
)

type CreditLedgerRepository struct {
	db *gorm.DB
}

func NewCreditLedgerRepository(db *gorm.DB) *CreditLedgerRepository {
	return &CreditLedgerRepository{db: db}
}

func (r *CreditLedgerRepository) Create(ctx context.Context, l *credits.Ledger) error {
	model := mappers.LedgerToModel(l)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create credit ledger: %w", err)
	}

	l.SetID(model.ID)

	return nil
}

func (r *CreditLedgerRepository) Update(ctx context.Context, l *credits.Ledger) error {
	model := mappers.LedgerToModel(l)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CreditLedgerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"credits":         model.Credits,
			"used_credits":    model.UsedCredits,
			"reset_frequency": model.ResetFrequency,
			"last_reset_at":   model.LastResetAt,
			"next_reset_at":   model.NextResetAt,
			"version":         model.Version,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update credit ledger: %w", result.Error)
	}

	return nil
}

func (r *CreditLedgerRepository) GetByUserID(ctx context.Context, userID uint) (*credits.Ledger, error) {
	var model models.CreditLedgerModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credit ledger: %w", err)
	}

	return mappers.LedgerToDomain(&model)
}

// ConsumeAtomic spends n credits with a single conditional update so
// concurrent spends cannot overdraw the balance.
func (r *CreditLedgerRepository) ConsumeAtomic(ctx context.Context, userID uint, n int64) (bool, error) {
	if n <= 0 {
		return false, fmt.Errorf("consume amount must be positive")
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CreditLedgerModel{}).
		Where("user_id = ? AND credits - used_credits >= ?", userID, n).
		Updates(map[string]interface{}{
			"used_credits": gorm.Expr("used_credits + ?", n),
			"updated_at":   biztime.NowUTC(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to consume credits: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *CreditLedgerRepository) GrantAtomic(ctx context.Context, userID uint, n int64) error {
	if n <= 0 {
		return fmt.Errorf("grant amount must be positive")
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CreditLedgerModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"credits":    gorm.Expr("credits + ?", n),
			"updated_at": biztime.NowUTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to grant credits: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("credit ledger not found for user %d", userID)
	}

	return nil
}
