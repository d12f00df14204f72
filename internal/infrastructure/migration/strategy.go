package migration

import "gorm.io/gorm"

// Strategy runs schema migrations. GormAutoMigrateStrategy derives the
// schema from model structs, the SQL-script strategies replay versioned
// files from disk.
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}
