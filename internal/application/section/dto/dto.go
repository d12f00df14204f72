// Package dto defines request and response types for section operations.
package dto

import "time"

type CreateSectionRequest struct {
	Title string `json:"title" binding:"omitempty,max=200"`
	Type  string `json:"type" binding:"required,oneof=hero features testimonials cta pricing team contact content gallery custom"`
}

type UpdateSectionRequest struct {
	Title    *string                `json:"title" binding:"omitempty,max=200"`
	IsActive *bool                  `json:"is_active"`
	Content  map[string]interface{} `json:"content"`
	Settings map[string]interface{} `json:"settings"`
}

// ReorderSectionsRequest carries the complete new order for a page's
// sections. SectionIDs must be a permutation of the page's live sections.
type ReorderSectionsRequest struct {
	PageID     string   `json:"page_id" binding:"required"`
	SectionIDs []string `json:"section_ids" binding:"required,min=1"`
}

type SectionResponse struct {
	ID        string                 `json:"id"`
	PageID    string                 `json:"page_id"`
	Title     string                 `json:"title"`
	Type      string                 `json:"type"`
	Position  int                    `json:"position"`
	IsActive  bool                   `json:"is_active"`
	Content   map[string]interface{} `json:"content,omitempty"`
	Settings  map[string]interface{} `json:"settings,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
