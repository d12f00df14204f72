package page

import "context"

// Repository is the persistence port for pages. All lookups exclude
// soft-deleted rows; GetBySID/GetByID return (nil, nil) when no live row
// matches.
type Repository interface {
	Create(ctx context.Context, p *Page) error
	Update(ctx context.Context, p *Page) error
	GetByID(ctx context.Context, id uint) (*Page, error)
	GetBySID(ctx context.Context, sid string) (*Page, error)
	// ListBySite returns the site's live pages ordered by position.
	ListBySite(ctx context.Context, siteID uint) ([]*Page, error)
	CountBySite(ctx context.Context, siteID uint) (int64, error)
	// ExistsBySlug checks slug uniqueness within a site, excluding
	// excludeID (0 to exclude nothing).
	ExistsBySlug(ctx context.Context, siteID uint, slug string, excludeID uint) (bool, error)
	// GetHomepage returns the site's homepage, (nil, nil) when none is set.
	GetHomepage(ctx context.Context, siteID uint) (*Page, error)
	// UpdatePositions writes the position for each page ID in the map.
	UpdatePositions(ctx context.Context, siteID uint, positions map[uint]int) error
	SoftDelete(ctx context.Context, p *Page) error
	// SoftDeleteBySite cascades removal of all live pages of a site.
	SoftDeleteBySite(ctx context.Context, siteID uint) error
}
