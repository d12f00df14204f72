package site

import "context"

// Repository is the persistence port for sites. All lookups exclude
// soft-deleted rows; GetBySID/GetByID return (nil, nil) when no live row
// matches.
type Repository interface {
	Create(ctx context.Context, s *Site) error
	Update(ctx context.Context, s *Site) error
	GetByID(ctx context.Context, id uint) (*Site, error)
	GetBySID(ctx context.Context, sid string) (*Site, error)
	ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]*Site, int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	// ExistsBySlug checks global slug uniqueness, excluding excludeID
	// (0 to exclude nothing).
	ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error)
	SoftDelete(ctx context.Context, s *Site) error
}
