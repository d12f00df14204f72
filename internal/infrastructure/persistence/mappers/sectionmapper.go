package mappers

import (
	"github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
)

func SectionToModel(s *section.Section) *models.SectionModel {
	model := &models.SectionModel{
		ID:          s.ID(),
		SID:         s.SID(),
		PageID:      s.PageID(),
		Title:       s.Title(),
		SectionType: s.SectionType().String(),
		Position:    s.Position(),
		IsActive:    s.IsActive(),
		DeletedAt:   s.DeletedAt(),
		Version:     s.Version(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}

	if len(s.Content()) > 0 {
		model.Content = s.Content()
	}
	if len(s.Settings()) > 0 {
		model.Settings = s.Settings()
	}

	return model
}

func SectionToDomain(model *models.SectionModel) (*section.Section, error) {
	return section.ReconstructSection(
		model.ID,
		model.SID,
		model.PageID,
		model.Title,
		section.Type(model.SectionType),
		model.Position,
		model.IsActive,
		model.Content,
		model.Settings,
		model.DeletedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
