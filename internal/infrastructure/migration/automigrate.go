package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// AutoMigrateModels returns every model the schema covers, in dependency
// order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SiteModel{},
		&models.PageModel{},
		&models.SectionModel{},
		&models.PaymentModel{},
		&models.CreditLedgerModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the model structs. Used
// in development only; production runs versioned SQL scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
