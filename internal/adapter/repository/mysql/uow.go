package mysql

import (
	"context"
	"errors"

	maintenanceDomain "greenmarket-backend/internal/domain/maintenance"
	projectDomain "greenmarket-backend/internal/domain/project"
	quotationDomain "greenmarket-backend/internal/domain/quotation"
	"greenmarket-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

var _ uow.UnitOfWork = (*GormUoW)(nil)

// compile-time checks for the repositories bound into Repos
var (
	_ quotationDomain.Repository        = (*QuotationRepository)(nil)
	_ quotationDomain.VersionRepository = (*VersionRepository)(nil)
	_ projectDomain.Repository          = (*ProjectRepository)(nil)
	_ maintenanceDomain.Repository      = (*MaintenanceRepository)(nil)
)

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Quotations:   &QuotationRepository{db: tx},
		Versions:     &VersionRepository{db: tx},
		Projects:     &ProjectRepository{db: tx},
		Maintenances: &MaintenanceRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinQuotationTx(ctx context.Context, quotationID string, fn func(r uow.Repos, q *quotationDomain.Quotation) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the quotation row up-front to serialize version changes
		q, err := r.Quotations.GetByQuotationIDForUpdate(ctx, quotationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quotationDomain.ErrNotFound
		}
		if err != nil {
			return err
		}
		return fn(r, q)
	})
}

func (u *GormUoW) WithinProjectTx(ctx context.Context, projectID string, fn func(r uow.Repos, p *projectDomain.Project) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		p, err := r.Projects.GetByProjectIDForUpdate(ctx, projectID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projectDomain.ErrNotFound
		}
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
