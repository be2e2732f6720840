package mysql

import (
	"context"

	maintenanceDomain "greenmarket-backend/internal/domain/maintenance"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MaintenanceRepository struct{ db *gorm.DB }

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *maintenanceDomain.Maintenance) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MaintenanceRepository) Save(ctx context.Context, m *maintenanceDomain.Maintenance) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MaintenanceRepository) GetByMaintenanceID(ctx context.Context, maintenanceID string) (*maintenanceDomain.Maintenance, error) {
	var out maintenanceDomain.Maintenance
	res := r.db.WithContext(ctx).Where("maintenance_id = ?", maintenanceID).First(&out)
	return &out, res.Error
}

func (r *MaintenanceRepository) GetByMaintenanceIDForUpdate(ctx context.Context, maintenanceID string) (*maintenanceDomain.Maintenance, error) {
	var out maintenanceDomain.Maintenance
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("maintenance_id = ?", maintenanceID).
		First(&out)
	return &out, res.Error
}

func (r *MaintenanceRepository) ListByProject(ctx context.Context, projectNumericID uint64) ([]maintenanceDomain.Maintenance, error) {
	var out []maintenanceDomain.Maintenance
	res := r.db.WithContext(ctx).
		Where("project_id = ?", projectNumericID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *MaintenanceRepository) GetOpenByProject(ctx context.Context, projectNumericID uint64) (*maintenanceDomain.Maintenance, error) {
	var out maintenanceDomain.Maintenance
	res := r.db.WithContext(ctx).
		Where("open_project_id = ?", projectNumericID).
		First(&out)
	return &out, res.Error
}
