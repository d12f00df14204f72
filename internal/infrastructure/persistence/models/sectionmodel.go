package models

import (
	"time"

	"github.com/webloom-dev/webloom/internal/shared/constants"
)

type SectionModel struct {
	ID          uint   `gorm:"primaryKey"`
	SID         string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	PageID      uint   `gorm:"index;not null"`
	Title       string `gorm:"size:255"`
	SectionType string `gorm:"size:20;not null"`
	Position    int    `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true"`

	Content  JSONB `gorm:"type:json"`
	Settings JSONB `gorm:"type:json"`

	DeletedAt *time.Time `gorm:"index"`

	Version   int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SectionModel) TableName() string {
	return constants.TableSections
}
