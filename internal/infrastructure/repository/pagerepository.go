package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/webloom-dev/webloom/internal/domain/page"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/mappers"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/db"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) Create(ctx context.Context, p *page.Page) error {
	model := mappers.PageToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}

	p.SetID(model.ID)

	return nil
}

func (r *PageRepository) Update(ctx context.Context, p *page.Page) error {
	model := mappers.PageToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PageModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":        model.Title,
			"slug":         model.Slug,
			"status":       model.Status,
			"page_type":    model.PageType,
			"is_homepage":  model.IsHomepage,
			"position":     model.Position,
			"seo_settings": model.SEOSettings,
			"settings":     model.Settings,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update page: %w", result.Error)
	}

	return nil
}

func (r *PageRepository) GetByID(ctx context.Context, id uint) (*page.Page, error) {
	var model models.PageModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	return mappers.PageToDomain(&model)
}

func (r *PageRepository) GetBySID(ctx context.Context, sid string) (*page.Page, error) {
	var model models.PageModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page by sid: %w", err)
	}

	return mappers.PageToDomain(&model)
}

func (r *PageRepository) ListBySite(ctx context.Context, siteID uint) ([]*page.Page, error) {
	var pageModels []models.PageModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("site_id = ?", siteID).
		Order("position ASC").
		Find(&pageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	pages := make([]*page.Page, 0, len(pageModels))
	for i := range pageModels {
		p, err := mappers.PageToDomain(&pageModels[i])
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, nil
}

func (r *PageRepository) CountBySite(ctx context.Context, siteID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PageModel{}).
		Scopes(db.NotDeleted()).
		Where("site_id = ?", siteID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}

	return count, nil
}

func (r *PageRepository) ExistsBySlug(ctx context.Context, siteID uint, slug string, excludeID uint) (bool, error) {
	var count int64

	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.PageModel{}).
		Scopes(db.NotDeleted()).
		Where("site_id = ? AND slug = ?", siteID, slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check page slug: %w", err)
	}

	return count > 0, nil
}

func (r *PageRepository) GetHomepage(ctx context.Context, siteID uint) (*page.Page, error) {
	var model models.PageModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("site_id = ? AND is_homepage = ?", siteID, true).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get homepage: %w", err)
	}

	return mappers.PageToDomain(&model)
}

func (r *PageRepository) UpdatePositions(ctx context.Context, siteID uint, positions map[uint]int) error {
	tx := db.GetTxFromContext(ctx, r.db)
	now := biztime.NowUTC()

	for id, position := range positions {
		result := tx.Model(&models.PageModel{}).
			Where("id = ? AND site_id = ?", id, siteID).
			Updates(map[string]interface{}{
				"position":   position,
				"updated_at": now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update page position: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("page %d does not belong to site %d", id, siteID)
		}
	}

	return nil
}

func (r *PageRepository) SoftDelete(ctx context.Context, p *page.Page) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PageModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"deleted_at":  p.DeletedAt(),
			"is_homepage": false,
			"slug":        p.Slug(),
			"version":     p.Version(),
			"updated_at":  p.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to soft delete page: %w", result.Error)
	}

	return nil
}

func (r *PageRepository) SoftDeleteBySite(ctx context.Context, siteID uint) error {
	now := biztime.NowUTC()

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PageModel{}).
		Scopes(db.NotDeleted()).
		Where("site_id = ?", siteID).
		Updates(map[string]interface{}{
			"deleted_at":  now,
			"is_homepage": false,
			// retire slugs in bulk the same way Page.SoftDelete does
			"slug":        gorm.Expr("CONCAT(slug, '-', sid)"),
			"updated_at":  now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to soft delete pages of site: %w", result.Error)
	}

	return nil
}
