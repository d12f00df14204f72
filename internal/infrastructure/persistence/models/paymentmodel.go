package models

import (
	"time"

	"github.com/webloom-dev/webloom/internal/shared/constants"
)

type PaymentModel struct {
	ID             uint   `gorm:"primaryKey"`
	SID            string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	UserID         uint   `gorm:"index;not null"`
	OrderNo        string `gorm:"uniqueIndex;size:64;not null"`
	Amount         int64  `gorm:"not null"`
	RefundedAmount int64  `gorm:"not null;default:0"`
	Currency       string `gorm:"size:10;not null;default:'USD'"`
	Status         string `gorm:"size:20;not null;index"`
	Method         string `gorm:"size:20;not null"`
	PaymentType    string `gorm:"size:20;not null;index"`

	ProcessorRef string `gorm:"size:128;index"`
	Description  string `gorm:"size:255"`
	Metadata     JSONB  `gorm:"type:json"`

	PaidAt     *time.Time
	RefundedAt *time.Time

	Version   int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PaymentModel) TableName() string {
	return constants.TablePayments
}
