package models

import (
	"time"

	"github.com/webloom-dev/webloom/internal/shared/constants"
)

type SiteModel struct {
	ID       uint   `gorm:"primaryKey"`
	SID      string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	OwnerID  uint   `gorm:"index;not null"`
	Name     string `gorm:"size:255;not null"`
	Slug     string `gorm:"uniqueIndex;size:100;not null"`
	Status   string `gorm:"size:20;not null;default:'draft';index"`
	Template string `gorm:"size:100"`

	StyleSettings JSONB `gorm:"type:json"`
	SEOSettings   JSONB `gorm:"type:json"`
	CustomCode    JSONB `gorm:"type:json"`

	PublishedAt *time.Time
	DeletedAt   *time.Time `gorm:"index"`

	Version   int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SiteModel) TableName() string {
	return constants.TableSites
}
