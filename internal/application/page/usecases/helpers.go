package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/page/dto"
	domainPage "github.com/webloom-dev/webloom/internal/domain/page"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/shared/slug"
)

// Actor aliases the access actor so handlers import one package.
type Actor = access.Actor

func toPageResponse(p *domainPage.Page, s *domainSite.Site) *dto.PageResponse {
	return &dto.PageResponse{
		ID:          p.SID(),
		SiteID:      s.SID(),
		Title:       p.Title(),
		Slug:        p.Slug(),
		Status:      p.Status().String(),
		Type:        p.PageType().String(),
		IsHomepage:  p.IsHomepage(),
		Position:    p.Position(),
		SEOSettings: p.SEOSettings(),
		Settings:    p.Settings(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// resolvePageSlug derives a slug unique within the site. On a collision a
// single random suffix is appended; the composite unique index backstops
// the remaining race.
func resolvePageSlug(ctx context.Context, repo domainPage.Repository, siteID uint, title string, excludeID uint) (string, error) {
	candidate := slug.Make(title)

	taken, err := repo.ExistsBySlug(ctx, siteID, candidate, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if !taken {
		return candidate, nil
	}
	return slug.WithSuffix(candidate), nil
}
