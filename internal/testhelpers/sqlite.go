package testhelpers

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dermatrack/backend/internal/models"
)

// SetupSQLiteDB opens an in-memory database for fast unit tests. The
// unique indexes from the model tags are created by AutoMigrate, so
// uniqueness behavior can be exercised without a container.
func SetupSQLiteDB(t *testing.T) *gorm.DB {
	// One shared in-memory database per test, so the pool's connections
	// all see the same schema
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Allergen{},
		&models.UserAllergy{},
	); err != nil {
		t.Fatalf("failed to migrate in-memory database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}
