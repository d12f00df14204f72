package models

import (
	"time"

	"github.com/webloom-dev/webloom/internal/shared/constants"
)

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:'user'"`
	Status       string `gorm:"size:20;not null;default:'active';index"`

	MaxSites           int `gorm:"not null"`
	MaxPagesPerSite    int `gorm:"not null"`
	MaxSectionsPerPage int `gorm:"not null"`

	BillingCustomerID     *string `gorm:"size:128;index"`
	BillingSubscriptionID *string `gorm:"size:128"`

	PasswordResetToken     *string `gorm:"size:128;index"`
	PasswordResetExpiresAt *time.Time

	Version   int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
