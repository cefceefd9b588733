package infra

import (
	"fmt"

	"github.com/amalfamous/QuickCRM/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the SQLite file and runs AutoMigrate to create any
// missing tables — table creation is idempotent and happens at every process
// start. TranslateError makes unique-index violations surface as
// gorm.ErrDuplicatedKey so the services can map them to the domain taxonomy.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Single writer: SQLite serializes writes anyway, and one connection
	// avoids SQLITE_BUSY under concurrent mutations.
	sqlDB.SetMaxOpenConns(1)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations creates the pipeline tables if absent. Also used by tests
// against in-memory databases.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Client{},
		&model.Quote{},
		&model.PurchaseOrder{},
		&model.Invoice{},
		&model.Delivery{},
	)
}
