package quotationmock

import (
	"context"

	domain "greenmarket-backend/internal/domain/quotation"
)

var (
	_ domain.Repository        = (*Repo)(nil)
	_ domain.VersionRepository = (*VersionRepo)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset writers are no-ops; unset readers return context.Canceled.
type Repo struct {
	CreateFn                    func(ctx context.Context, q *domain.Quotation) error
	SaveFn                      func(ctx context.Context, q *domain.Quotation) error
	GetByQuotationIDFn          func(ctx context.Context, quotationID string) (*domain.Quotation, error)
	GetByQuotationIDForUpdateFn func(ctx context.Context, quotationID string) (*domain.Quotation, error)
	ListByConsumerFn            func(ctx context.Context, consumerID string) ([]domain.Quotation, error)
	ListByCompanyFn             func(ctx context.Context, companyID string) ([]domain.Quotation, error)
}

func (m *Repo) Create(ctx context.Context, q *domain.Quotation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, q *domain.Quotation) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, q)
	}
	return nil
}

func (m *Repo) GetByQuotationID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	if m.GetByQuotationIDFn != nil {
		return m.GetByQuotationIDFn(ctx, quotationID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByQuotationIDForUpdate(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	if m.GetByQuotationIDForUpdateFn != nil {
		return m.GetByQuotationIDForUpdateFn(ctx, quotationID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByConsumer(ctx context.Context, consumerID string) ([]domain.Quotation, error) {
	if m.ListByConsumerFn != nil {
		return m.ListByConsumerFn(ctx, consumerID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCompany(ctx context.Context, companyID string) ([]domain.Quotation, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID)
	}
	return nil, context.Canceled
}

// VersionRepo is a function-backed mock that satisfies domain.VersionRepository.
type VersionRepo struct {
	CreateFn          func(ctx context.Context, v *domain.Version) error
	SaveFn            func(ctx context.Context, v *domain.Version) error
	GetByVersionIDFn  func(ctx context.Context, versionID string) (*domain.Version, error)
	ListByQuotationFn func(ctx context.Context, quotationNumericID uint64) ([]domain.Version, error)
	GetLatestFn       func(ctx context.Context, quotationNumericID uint64) (*domain.Version, error)
}

func (m *VersionRepo) Create(ctx context.Context, v *domain.Version) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *VersionRepo) Save(ctx context.Context, v *domain.Version) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, v)
	}
	return nil
}

func (m *VersionRepo) GetByVersionID(ctx context.Context, versionID string) (*domain.Version, error) {
	if m.GetByVersionIDFn != nil {
		return m.GetByVersionIDFn(ctx, versionID)
	}
	return nil, context.Canceled
}

func (m *VersionRepo) ListByQuotation(ctx context.Context, quotationNumericID uint64) ([]domain.Version, error) {
	if m.ListByQuotationFn != nil {
		return m.ListByQuotationFn(ctx, quotationNumericID)
	}
	return nil, context.Canceled
}

func (m *VersionRepo) GetLatest(ctx context.Context, quotationNumericID uint64) (*domain.Version, error) {
	if m.GetLatestFn != nil {
		return m.GetLatestFn(ctx, quotationNumericID)
	}
	return nil, context.Canceled
}
