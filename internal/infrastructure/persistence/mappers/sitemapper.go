package mappers

import (
	"github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
)

func SiteToModel(s *site.Site) *models.SiteModel {
	model := &models.SiteModel{
		ID:          s.ID(),
		SID:         s.SID(),
		OwnerID:     s.OwnerID(),
		Name:        s.Name(),
		Slug:        s.Slug(),
		Status:      s.Status().String(),
		Template:    s.Template(),
		PublishedAt: s.PublishedAt(),
		DeletedAt:   s.DeletedAt(),
		Version:     s.Version(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}

	if len(s.StyleSettings()) > 0 {
		model.StyleSettings = s.StyleSettings()
	}
	if len(s.SEOSettings()) > 0 {
		model.SEOSettings = s.SEOSettings()
	}
	if len(s.CustomCode()) > 0 {
		model.CustomCode = s.CustomCode()
	}

	return model
}

func SiteToDomain(model *models.SiteModel) (*site.Site, error) {
	return site.ReconstructSite(
		model.ID,
		model.SID,
		model.OwnerID,
		model.Name,
		model.Slug,
		site.Status(model.Status),
		model.Template,
		model.StyleSettings,
		model.SEOSettings,
		model.CustomCode,
		model.PublishedAt,
		model.DeletedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
