package mappers

import (
	"github.com/webloom-dev/webloom/internal/domain/page"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
)

func PageToModel(p *page.Page) *models.PageModel {
	model := &models.PageModel{
		ID:         p.ID(),
		SID:        p.SID(),
		SiteID:     p.SiteID(),
		Title:      p.Title(),
		Slug:       p.Slug(),
		Status:     p.Status().String(),
		PageType:   p.PageType().String(),
		IsHomepage: p.IsHomepage(),
		Position:   p.Position(),
		DeletedAt:  p.DeletedAt(),
		Version:    p.Version(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}

	if len(p.SEOSettings()) > 0 {
		model.SEOSettings = p.SEOSettings()
	}
	if len(p.Settings()) > 0 {
		model.Settings = p.Settings()
	}

	return model
}

func PageToDomain(model *models.PageModel) (*page.Page, error) {
	return page.ReconstructPage(
		model.ID,
		model.SID,
		model.SiteID,
		model.Title,
		model.Slug,
		page.Status(model.Status),
		page.Type(model.PageType),
		model.IsHomepage,
		model.Position,
		model.SEOSettings,
		model.Settings,
		model.DeletedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
