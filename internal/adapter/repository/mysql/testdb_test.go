package mysql

import (
	"testing"

	maintenanceDomain "greenmarket-backend/internal/domain/maintenance"
	projectDomain "greenmarket-backend/internal/domain/project"
	quotationDomain "greenmarket-backend/internal/domain/quotation"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with every table migrated.
// Enum-like columns are varchar, so the domain models migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// each new connection would get its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&quotationDomain.Quotation{},
		&quotationDomain.Version{},
		&projectDomain.Project{},
		&projectDomain.Step{},
		&maintenanceDomain.Maintenance{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
