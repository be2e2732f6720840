package maintenance

import "context"

type Repository interface {
	// Create fails with a duplicate key when the project already has an open record.
	Create(ctx context.Context, m *Maintenance) error
	Save(ctx context.Context, m *Maintenance) error
	GetByMaintenanceID(ctx context.Context, maintenanceID string) (*Maintenance, error)
	GetByMaintenanceIDForUpdate(ctx context.Context, maintenanceID string) (*Maintenance, error)
	// Newest first.
	ListByProject(ctx context.Context, projectNumericID uint64) ([]Maintenance, error)
	GetOpenByProject(ctx context.Context, projectNumericID uint64) (*Maintenance, error)
}
