package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/site/dto"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/shared/slug"
)

// Actor aliases the access actor so handlers import one package.
type Actor = access.Actor

func toSiteResponse(s *domainSite.Site) *dto.SiteResponse {
	return &dto.SiteResponse{
		ID:            s.SID(),
		Name:          s.Name(),
		Slug:          s.Slug(),
		Status:        s.Status().String(),
		Template:      s.Template(),
		StyleSettings: s.StyleSettings(),
		SEOSettings:   s.SEOSettings(),
		CustomCode:    s.CustomCode(),
		PublishedAt:   s.PublishedAt(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

// resolveSiteSlug derives a globally unique slug from the name. On a
// collision a single random suffix is appended; the unique index backstops
// the remaining race.
func resolveSiteSlug(ctx context.Context, repo domainSite.Repository, name string, excludeID uint) (string, error) {
	candidate := slug.Make(name)

	taken, err := repo.ExistsBySlug(ctx, candidate, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if !taken {
		return candidate, nil
	}
	return slug.WithSuffix(candidate), nil
}
