package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/mappers"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/constants"
	"github.com/webloom-dev/webloom/internal/shared/db"
)

type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) Create(ctx context.Context, s *section.Section) error {
	model := mappers.SectionToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create section: %w", err)
	}

	s.SetID(model.ID)

	return nil
}

func (r *SectionRepository) Update(ctx context.Context, s *section.Section) error {
	model := mappers.SectionToModel(s)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SectionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"position":   model.Position,
			"is_active":  model.IsActive,
			"content":    model.Content,
			"settings":   model.Settings,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update section: %w", result.Error)
	}

	return nil
}

func (r *SectionRepository) GetByID(ctx context.Context, id uint) (*section.Section, error) {
	var model models.SectionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	return mappers.SectionToDomain(&model)
}

func (r *SectionRepository) GetBySID(ctx context.Context, sid string) (*section.Section, error) {
	var model models.SectionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get section by sid: %w", err)
	}

	return mappers.SectionToDomain(&model)
}

func (r *SectionRepository) ListByPage(ctx context.Context, pageID uint) ([]*section.Section, error) {
	var sectionModels []models.SectionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("page_id = ?", pageID).
		Order("position ASC").
		Find(&sectionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	sections := make([]*section.Section, 0, len(sectionModels))
	for i := range sectionModels {
		s, err := mappers.SectionToDomain(&sectionModels[i])
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	return sections, nil
}

func (r *SectionRepository) CountBySite(ctx context.Context, siteID uint) (int64, error) {
	var count int64

	join := fmt.Sprintf("JOIN %s ON %s.id = %s.page_id",
		constants.TablePages, constants.TablePages, constants.TableSections)

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SectionModel{}).
		Joins(join).
		Scopes(
			db.NotDeletedWithAlias(constants.TableSections),
			db.NotDeletedWithAlias(constants.TablePages),
		).
		Where(constants.TablePages+".site_id = ?", siteID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sections: %w", err)
	}

	return count, nil
}

func (r *SectionRepository) CountByPage(ctx context.Context, pageID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SectionModel{}).
		Scopes(db.NotDeleted()).
		Where("page_id = ?", pageID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sections: %w", err)
	}

	return count, nil
}

func (r *SectionRepository) UpdatePositions(ctx context.Context, pageID uint, positions map[uint]int) error {
	tx := db.GetTxFromContext(ctx, r.db)
	now := biztime.NowUTC()

	for id, position := range positions {
		result := tx.Model(&models.SectionModel{}).
			Where("id = ? AND page_id = ?", id, pageID).
			Updates(map[string]interface{}{
				"position":   position,
				"updated_at": now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update section position: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("section %d does not belong to page %d", id, pageID)
		}
	}

	return nil
}

func (r *SectionRepository) SoftDelete(ctx context.Context, s *section.Section) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SectionModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"deleted_at": s.DeletedAt(),
			"version":    s.Version(),
			"updated_at": s.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to soft delete section: %w", result.Error)
	}

	return nil
}

func (r *SectionRepository) SoftDeleteByPage(ctx context.Context, pageID uint) error {
	now := biztime.NowUTC()

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SectionModel{}).
		Scopes(db.NotDeleted()).
		Where("page_id = ?", pageID).
		Updates(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to soft delete sections of page: %w", result.Error)
	}

	return nil
}

func (r *SectionRepository) SoftDeleteByPages(ctx context.Context, pageIDs []uint) error {
	if len(pageIDs) == 0 {
		return nil
	}
	now := biztime.NowUTC()

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SectionModel{}).
		Scopes(db.NotDeleted()).
		Where("page_id IN ?", pageIDs).
		Updates(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to soft delete sections of pages: %w", result.Error)
	}

	return nil
}
