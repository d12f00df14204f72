package section

import "context"

// Repository is the persistence port for page sections. All lookups exclude
// soft-deleted rows; GetBySID/GetByID return (nil, nil) when no live row
// matches.
type Repository interface {
	Create(ctx context.Context, s *Section) error
	Update(ctx context.Context, s *Section) error
	GetByID(ctx context.Context, id uint) (*Section, error)
	GetBySID(ctx context.Context, sid string) (*Section, error)
	// ListByPage returns the page's live sections ordered by position.
	ListByPage(ctx context.Context, pageID uint) ([]*Section, error)
	CountByPage(ctx context.Context, pageID uint) (int64, error)
	// CountBySite counts live sections across all live pages of a site.
	CountBySite(ctx context.Context, siteID uint) (int64, error)
	// UpdatePositions writes the position for each section ID in the map.
	UpdatePositions(ctx context.Context, pageID uint, positions map[uint]int) error
	SoftDelete(ctx context.Context, s *Section) error
	// SoftDeleteByPage cascades removal of all live sections of a page.
	SoftDeleteByPage(ctx context.Context, pageID uint) error
	// SoftDeleteByPages cascades removal across many pages at once, used
	// when a whole site is deleted.
	SoftDeleteByPages(ctx context.Context, pageIDs []uint) error
}
