package projectmock

import (
	"context"

	domain "greenmarket-backend/internal/domain/project"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset writers are no-ops; unset readers return context.Canceled.
type Repo struct {
	CreateFn                  func(ctx context.Context, p *domain.Project) error
	SaveFn                    func(ctx context.Context, p *domain.Project) error
	SaveStepFn                func(ctx context.Context, s *domain.Step) error
	GetByProjectIDFn          func(ctx context.Context, projectID string) (*domain.Project, error)
	GetByProjectIDForUpdateFn func(ctx context.Context, projectID string) (*domain.Project, error)
	GetByQuotationIDFn        func(ctx context.Context, quotationNumericID uint64) (*domain.Project, error)
	ListCompletedFn           func(ctx context.Context, f domain.Filter) ([]domain.Project, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Project) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) SaveStep(ctx context.Context, s *domain.Step) error {
	if m.SaveStepFn != nil {
		return m.SaveStepFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDFn != nil {
		return m.GetByProjectIDFn(ctx, projectID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByProjectIDForUpdate(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDForUpdateFn != nil {
		return m.GetByProjectIDForUpdateFn(ctx, projectID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByQuotationID(ctx context.Context, quotationNumericID uint64) (*domain.Project, error) {
	if m.GetByQuotationIDFn != nil {
		return m.GetByQuotationIDFn(ctx, quotationNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListCompleted(ctx context.Context, f domain.Filter) ([]domain.Project, error) {
	if m.ListCompletedFn != nil {
		return m.ListCompletedFn(ctx, f)
	}
	return nil, context.Canceled
}
