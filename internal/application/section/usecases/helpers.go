package usecases

import (
	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/section/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSection "github.com/webloom-dev/webloom/internal/domain/section"
)

// Actor aliases the access actor so handlers import one package.
type Actor = access.Actor

func toSectionResponse(s *domainSection.Section, p *domainPage.Page) *dto.SectionResponse {
	return &dto.SectionResponse{
		ID:        s.SID(),
		PageID:    p.SID(),
		Title:     s.Title(),
		Type:      s.SectionType().String(),
		Position:  s.Position(),
		IsActive:  s.IsActive(),
		Content:   s.Content(),
		Settings:  s.Settings(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}
