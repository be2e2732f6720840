package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := gdb.DB()
	sqlDB.SetMaxOpenConns(1)
	return gdb
}

func TestMigrate_CreatesTables(t *testing.T) {
	gdb := openSQLite(t)

	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, table := range []string{"quotations", "quotation_versions", "projects", "project_steps", "maintenances"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("table %s missing", table)
		}
	}
	if !gdb.Migrator().HasIndex("quotation_versions", "ux_versions_open_draft") {
		t.Fatal("draft slot index missing")
	}

	// idempotent
	if err := Migrate(gdb); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestRollbackLast(t *testing.T) {
	gdb := openSQLite(t)
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := RollbackLast(gdb); err != nil {
		t.Fatalf("RollbackLast: %v", err)
	}
	if gdb.Migrator().HasTable("maintenances") {
		t.Fatal("maintenances still present after rollback")
	}
	if !gdb.Migrator().HasTable("projects") {
		t.Fatal("projects dropped by rollback of a later migration")
	}
}
