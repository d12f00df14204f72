package models

import (
	"time"

	"github.com/webloom-dev/webloom/internal/shared/constants"
)

type CreditLedgerModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"uniqueIndex;not null"`
	Credits        int64  `gorm:"not null;default:0"`
	UsedCredits    int64  `gorm:"not null;default:0"`
	ResetFrequency string `gorm:"size:20;not null;default:'monthly'"`
	LastResetAt    time.Time
	NextResetAt    *time.Time

	Version   int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CreditLedgerModel) TableName() string {
	return constants.TableCreditLedgers
}
