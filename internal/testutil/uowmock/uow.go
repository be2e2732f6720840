package uowmock

import (
	"context"
	"errors"

	"greenmarket-backend/internal/domain/project"
	"greenmarket-backend/internal/domain/quotation"
	"greenmarket-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn          func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinQuotationTxFn func(ctx context.Context, quotationID string, fn func(r uow.Repos, q *quotation.Quotation) error) error
	WithinProjectTxFn   func(ctx context.Context, projectID string, fn func(r uow.Repos, p *project.Project) error) error
}

// Passthrough runs every callback against r, loading the locked row through
// the Quotations/Projects ForUpdate readers the way the gorm UoW does.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error { return fn(r) },
		WithinQuotationTxFn: func(ctx context.Context, quotationID string, fn func(uow.Repos, *quotation.Quotation) error) error {
			q, err := r.Quotations.GetByQuotationIDForUpdate(ctx, quotationID)
			if err != nil {
				return quotation.ErrNotFound
			}
			return fn(r, q)
		},
		WithinProjectTxFn: func(ctx context.Context, projectID string, fn func(uow.Repos, *project.Project) error) error {
			p, err := r.Projects.GetByProjectIDForUpdate(ctx, projectID)
			if err != nil {
				return project.ErrNotFound
			}
			return fn(r, p)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinQuotationTx(ctx context.Context, quotationID string, fn func(r uow.Repos, q *quotation.Quotation) error) error {
	if m.WithinQuotationTxFn != nil {
		return m.WithinQuotationTxFn(ctx, quotationID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinProjectTx(ctx context.Context, projectID string, fn func(r uow.Repos, p *project.Project) error) error {
	if m.WithinProjectTxFn != nil {
		return m.WithinProjectTxFn(ctx, projectID, fn)
	}
	return errUnimplemented
}
