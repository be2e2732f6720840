package maintenancemock

import (
	"context"

	domain "greenmarket-backend/internal/domain/maintenance"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset writers are no-ops; unset readers return context.Canceled.
type Repo struct {
	CreateFn                      func(ctx context.Context, m *domain.Maintenance) error
	SaveFn                        func(ctx context.Context, m *domain.Maintenance) error
	GetByMaintenanceIDFn          func(ctx context.Context, maintenanceID string) (*domain.Maintenance, error)
	GetByMaintenanceIDForUpdateFn func(ctx context.Context, maintenanceID string) (*domain.Maintenance, error)
	ListByProjectFn               func(ctx context.Context, projectNumericID uint64) ([]domain.Maintenance, error)
	GetOpenByProjectFn            func(ctx context.Context, projectNumericID uint64) (*domain.Maintenance, error)
}

func (r *Repo) Create(ctx context.Context, m *domain.Maintenance) error {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, m)
	}
	return nil
}

func (r *Repo) Save(ctx context.Context, m *domain.Maintenance) error {
	if r.SaveFn != nil {
		return r.SaveFn(ctx, m)
	}
	return nil
}

func (r *Repo) GetByMaintenanceID(ctx context.Context, maintenanceID string) (*domain.Maintenance, error) {
	if r.GetByMaintenanceIDFn != nil {
		return r.GetByMaintenanceIDFn(ctx, maintenanceID)
	}
	return nil, context.Canceled
}

func (r *Repo) GetByMaintenanceIDForUpdate(ctx context.Context, maintenanceID string) (*domain.Maintenance, error) {
	if r.GetByMaintenanceIDForUpdateFn != nil {
		return r.GetByMaintenanceIDForUpdateFn(ctx, maintenanceID)
	}
	return nil, context.Canceled
}

func (r *Repo) ListByProject(ctx context.Context, projectNumericID uint64) ([]domain.Maintenance, error) {
	if r.ListByProjectFn != nil {
		return r.ListByProjectFn(ctx, projectNumericID)
	}
	return nil, context.Canceled
}

func (r *Repo) GetOpenByProject(ctx context.Context, projectNumericID uint64) (*domain.Maintenance, error) {
	if r.GetOpenByProjectFn != nil {
		return r.GetOpenByProjectFn(ctx, projectNumericID)
	}
	return nil, context.Canceled
}
