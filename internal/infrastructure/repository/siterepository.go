package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/mappers"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
	"github.com/webloom-dev/webloom/internal/shared/db"
)

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) Create(ctx context.Context, s *site.Site) error {
	model := mappers.SiteToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create site: %w", err)
	}

	s.SetID(model.ID)

	return nil
}

func (r *SiteRepository) Update(ctx context.Context, s *site.Site) error {
	model := mappers.SiteToModel(s)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SiteModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"owner_id":       model.OwnerID,
			"name":           model.Name,
			"slug":           model.Slug,
			"status":         model.Status,
			"template":       model.Template,
			"style_settings": model.StyleSettings,
			"seo_settings":   model.SEOSettings,
			"custom_code":    model.CustomCode,
			"published_at":   model.PublishedAt,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update site: %w", result.Error)
	}

	return nil
}

func (r *SiteRepository) GetByID(ctx context.Context, id uint) (*site.Site, error) {
	var model models.SiteModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	return mappers.SiteToDomain(&model)
}

func (r *SiteRepository) GetBySID(ctx context.Context, sid string) (*site.Site, error) {
	var model models.SiteModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site by sid: %w", err)
	}

	return mappers.SiteToDomain(&model)
}

func (r *SiteRepository) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]*site.Site, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.SiteModel{}).
		Scopes(db.NotDeleted()).
		Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sites: %w", err)
	}

	var siteModels []models.SiteModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&siteModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list sites: %w", err)
	}

	sites := make([]*site.Site, 0, len(siteModels))
	for i := range siteModels {
		s, err := mappers.SiteToDomain(&siteModels[i])
		if err != nil {
			return nil, 0, err
		}
		sites = append(sites, s)
	}

	return sites, total, nil
}

func (r *SiteRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SiteModel{}).
		Scopes(db.NotDeleted()).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sites: %w", err)
	}

	return count, nil
}

func (r *SiteRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64

	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.SiteModel{}).
		Scopes(db.NotDeleted()).
		Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check site slug: %w", err)
	}

	return count > 0, nil
}

func (r *SiteRepository) SoftDelete(ctx context.Context, s *site.Site) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SiteModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"deleted_at": s.DeletedAt(),
			"slug":       s.Slug(),
			"version":    s.Version(),
			"updated_at": s.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to soft delete site: %w", result.Error)
	}

	return nil
}
