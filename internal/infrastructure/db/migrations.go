package db

import (
	"log"

	"greenmarket-backend/internal/domain/maintenance"
	"greenmarket-backend/internal/domain/project"
	"greenmarket-backend/internal/domain/quotation"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20261001_create_quotations",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&quotation.Quotation{}, &quotation.Version{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("quotation_versions", "quotations")
			},
		},
		{
			ID: "20261001_create_projects",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&project.Project{}, &project.Step{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("project_steps", "projects")
			},
		},
		{
			ID: "20261008_create_maintenances",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&maintenance.Maintenance{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("maintenances")
			},
		},
	}
}

// Migrate applies every pending migration.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())
	if err := m.Migrate(); err != nil {
		return err
	}
	log.Println("gorm: migrations applied")
	return nil
}

// RollbackLast undoes the most recent migration.
func RollbackLast(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).RollbackLast()
}
