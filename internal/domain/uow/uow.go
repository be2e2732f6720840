package uow

import (
	"context"

	"greenmarket-backend/internal/domain/maintenance"
	"greenmarket-backend/internal/domain/project"
	"greenmarket-backend/internal/domain/quotation"
)

// Repos are bound to the surrounding transaction.
type Repos struct {
	Quotations   quotation.Repository
	Versions     quotation.VersionRepository
	Projects     project.Repository
	Maintenances maintenance.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the quotation row first, then pass it in; quotation.ErrNotFound if missing
	WithinQuotationTx(ctx context.Context, quotationID string, fn func(r Repos, q *quotation.Quotation) error) error
	// lock the project row (steps preloaded); project.ErrNotFound if missing
	WithinProjectTx(ctx context.Context, projectID string, fn func(r Repos, p *project.Project) error) error
}
