// Package dto defines request and response types for page operations.
package dto

import "time"

type CreatePageRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Type  string `json:"type" binding:"omitempty,oneof=page home about contact blog custom"`
}

type UpdatePageRequest struct {
	Title       *string                `json:"title" binding:"omitempty,min=1,max=200"`
	Status      *string                `json:"status" binding:"omitempty,oneof=draft published archived"`
	SEOSettings map[string]interface{} `json:"seo_settings"`
	Settings    map[string]interface{} `json:"settings"`
}

type DuplicatePageRequest struct {
	Title string `json:"title" binding:"omitempty,min=1,max=200"`
}

// ReorderPagesRequest carries the complete new order for a site's pages.
// PageIDs must be a permutation of the site's live pages.
type ReorderPagesRequest struct {
	SiteID  string   `json:"site_id" binding:"required"`
	PageIDs []string `json:"page_ids" binding:"required,min=1"`
}

type PageResponse struct {
	ID          string                 `json:"id"`
	SiteID      string                 `json:"site_id"`
	Title       string                 `json:"title"`
	Slug        string                 `json:"slug"`
	Status      string                 `json:"status"`
	Type        string                 `json:"type"`
	IsHomepage  bool                   `json:"is_homepage"`
	Position    int                    `json:"position"`
	SEOSettings map[string]interface{} `json:"seo_settings,omitempty"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
