package models

import (
	"time"

	"github.com/webloom-dev/webloom/internal/shared/constants"
)

type PageModel struct {
	ID         uint   `gorm:"primaryKey"`
	SID        string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	SiteID     uint   `gorm:"index:idx_pages_site_slug,unique;not null"`
	Title      string `gorm:"size:255;not null"`
	Slug       string `gorm:"index:idx_pages_site_slug,unique;size:100;not null"`
	Status     string `gorm:"size:20;not null;default:'draft'"`
	PageType   string `gorm:"size:20;not null;default:'page'"`
	IsHomepage bool   `gorm:"not null;default:false;index"`
	Position   int    `gorm:"not null;default:0"`

	SEOSettings JSONB `gorm:"type:json"`
	Settings    JSONB `gorm:"type:json"`

	DeletedAt *time.Time `gorm:"index"`

	Version   int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PageModel) TableName() string {
	return constants.TablePages
}
