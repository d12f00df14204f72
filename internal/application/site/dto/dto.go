package dto

import "time"

type CreateSiteRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Template string `json:"template" binding:"omitempty,max=100,template"`
}

type UpdateSiteRequest struct {
	Name          *string                `json:"name" binding:"omitempty,min=1,max=255"`
	Template      *string                `json:"template" binding:"omitempty,max=100,template"`
	StyleSettings map[string]interface{} `json:"style_settings"`
	SEOSettings   map[string]interface{} `json:"seo_settings"`
	CustomCode    map[string]interface{} `json:"custom_code"`
}

type DuplicateSiteRequest struct {
	Name           string `json:"name" binding:"omitempty,max=255"`
	IncludeContent bool   `json:"include_content"`
}

type TransferOwnershipRequest struct {
	NewOwnerEmail string `json:"new_owner_email" binding:"required,email"`
}

type SiteResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Slug          string                 `json:"slug"`
	Status        string                 `json:"status"`
	Template      string                 `json:"template,omitempty"`
	StyleSettings map[string]interface{} `json:"style_settings,omitempty"`
	SEOSettings   map[string]interface{} `json:"seo_settings,omitempty"`
	CustomCode    map[string]interface{} `json:"custom_code,omitempty"`
	PublishedAt   *time.Time             `json:"published_at,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type SiteStatsResponse struct {
	ID           string     `json:"id"`
	PageCount    int64      `json:"page_count"`
	SectionCount int64      `json:"section_count"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
