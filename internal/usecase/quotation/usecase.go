package quotation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	projectDomain "greenmarket-backend/internal/domain/project"
	domain "greenmarket-backend/internal/domain/quotation"
	"greenmarket-backend/internal/domain/uow"
	"greenmarket-backend/pkg/id"

	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid input")

// Exporter renders a version into a downloadable document.
type Exporter interface {
	ExportVersion(q *domain.Quotation, v *domain.Version) ([]byte, error)
}

type Usecase struct {
	quotations domain.Repository
	versions   domain.VersionRepository
	uow        uow.UnitOfWork
	exporter   Exporter
	now        func() time.Time
}

func NewUsecase(quotations domain.Repository, versions domain.VersionRepository, tx uow.UnitOfWork, exp Exporter) *Usecase {
	return &Usecase{
		quotations: quotations,
		versions:   versions,
		uow:        tx,
		exporter:   exp,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}

func (u *Usecase) RequestQuotation(ctx context.Context, in RequestQuotationInput) (*QuotationDTO, error) {
	if !id.IsID32(in.ConsumerID) || !id.IsID32(in.CompanyID) || in.ConsumerID == in.CompanyID {
		return nil, ErrInvalidInput
	}
	if in.AvgElectricityBill <= 0 || in.RoofArea < 0 || strings.TrimSpace(in.Address) == "" {
		return nil, ErrInvalidInput
	}

	now := u.now()
	q := &domain.Quotation{
		QuotationID:        id.NewID32(),
		ConsumerID:         in.ConsumerID,
		CompanyID:          in.CompanyID,
		ConsumerName:       strings.TrimSpace(in.ConsumerName),
		ConsumerEmail:      strings.TrimSpace(in.ConsumerEmail),
		ConsumerPhone:      strings.TrimSpace(in.ConsumerPhone),
		Address:            strings.TrimSpace(in.Address),
		PropertyType:       strings.TrimSpace(in.PropertyType),
		AvgElectricityBill: in.AvgElectricityBill,
		RoofArea:           in.RoofArea,
		Status:             domain.StatusPending,
		StatusUpdatedAt:    now,
	}
	if err := u.quotations.Create(ctx, q); err != nil {
		return nil, err
	}
	return toQuotationDTO(q), nil
}

func (u *Usecase) Get(ctx context.Context, quotationID string) (*QuotationDTO, error) {
	q, err := u.quotations.GetByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return toQuotationDTO(q), nil
}

func (u *Usecase) ListByConsumer(ctx context.Context, consumerID string) ([]QuotationDTO, error) {
	list, err := u.quotations.ListByConsumer(ctx, consumerID)
	if err != nil {
		return nil, err
	}
	return toQuotationDTOs(list), nil
}

func (u *Usecase) ListByCompany(ctx context.Context, companyID string) ([]QuotationDTO, error) {
	list, err := u.quotations.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toQuotationDTOs(list), nil
}

func toQuotationDTOs(list []domain.Quotation) []QuotationDTO {
	out := make([]QuotationDTO, 0, len(list))
	for i := range list {
		out = append(out, *toQuotationDTO(&list[i]))
	}
	return out
}

func (u *Usecase) ListVersions(ctx context.Context, quotationID string) ([]VersionDTO, error) {
	q, err := u.quotations.GetByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	list, err := u.versions.ListByQuotation(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	out := make([]VersionDTO, 0, len(list))
	for i := range list {
		out = append(out, *toVersionDTO(q.QuotationID, &list[i]))
	}
	return out, nil
}

func (u *Usecase) GetVersion(ctx context.Context, quotationID, versionID string) (*VersionDTO, error) {
	q, err := u.quotations.GetByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	v, err := versionOf(ctx, u.versions, q, versionID)
	if err != nil {
		return nil, err
	}
	return toVersionDTO(q.QuotationID, v), nil
}

// versionOf loads versionID and makes sure it belongs to q.
func versionOf(ctx context.Context, versions domain.VersionRepository, q *domain.Quotation, versionID string) (*domain.Version, error) {
	v, err := versions.GetByVersionID(ctx, versionID)
	if err != nil {
		return nil, notFound(err, domain.ErrVersionNotFound)
	}
	if v.QuotationID != q.ID {
		return nil, domain.ErrVersionNotFound
	}
	return v, nil
}

// CreateDraft opens the next version of a quotation. Every earlier version
// must already be submitted.
func (u *Usecase) CreateDraft(ctx context.Context, in DraftInput) (*VersionDTO, error) {
	var dto *VersionDTO
	err := u.uow.WithinQuotationTx(ctx, in.QuotationID, func(r uow.Repos, q *domain.Quotation) error {
		if q.CompanyID != in.CompanyID {
			return domain.ErrNotOwner
		}
		if q.Status == domain.StatusAccepted {
			return domain.ErrQuotationClosed
		}

		existing, err := r.Versions.ListByQuotation(ctx, q.ID)
		if err != nil {
			return err
		}
		next := 1
		for _, v := range existing {
			if v.Status == domain.VersionDraft {
				return domain.ErrDraftExists
			}
			if v.VersionNumber >= next {
				next = v.VersionNumber + 1
			}
		}

		v := domain.NewDraft(id.NewID32(), q.ID, next, in.Details)
		if err := r.Versions.Create(ctx, v); err != nil {
			// a concurrent draft won the unique slot
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDraftExists
			}
			return err
		}
		dto = toVersionDTO(q.QuotationID, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) UpdateDraft(ctx context.Context, in DraftInput) (*VersionDTO, error) {
	var dto *VersionDTO
	err := u.uow.WithinQuotationTx(ctx, in.QuotationID, func(r uow.Repos, q *domain.Quotation) error {
		if q.CompanyID != in.CompanyID {
			return domain.ErrNotOwner
		}
		v, err := versionOf(ctx, r.Versions, q, in.VersionID)
		if err != nil {
			return err
		}
		if v.Status != domain.VersionDraft {
			return domain.ErrVersionNotEditable
		}
		v.Apply(in.Details)
		if err := r.Versions.Save(ctx, v); err != nil {
			return err
		}
		dto = toVersionDTO(q.QuotationID, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// SubmitVersion returns a *domain.ValidationError when required fields are
// missing; the version then stays DRAFT.
func (u *Usecase) SubmitVersion(ctx context.Context, quotationID, versionID, companyID string) (*VersionDTO, error) {
	var dto *VersionDTO
	err := u.uow.WithinQuotationTx(ctx, quotationID, func(r uow.Repos, q *domain.Quotation) error {
		if q.CompanyID != companyID {
			return domain.ErrNotOwner
		}
		v, err := versionOf(ctx, r.Versions, q, versionID)
		if err != nil {
			return err
		}
		if err := v.Submit(u.now()); err != nil {
			return err
		}
		if err := r.Versions.Save(ctx, v); err != nil {
			return err
		}
		dto = toVersionDTO(q.QuotationID, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// FinalizeVersion accepts the latest submitted version and opens its project.
// Version, quotation and project change in one transaction.
func (u *Usecase) FinalizeVersion(ctx context.Context, quotationID, versionID string) (*FinalizeDTO, error) {
	var dto *FinalizeDTO
	err := u.uow.WithinQuotationTx(ctx, quotationID, func(r uow.Repos, q *domain.Quotation) error {
		v, err := versionOf(ctx, r.Versions, q, versionID)
		if err != nil {
			return err
		}
		if q.Status == domain.StatusAccepted {
			return domain.ErrAlreadyFinalized
		}

		latest, err := r.Versions.GetLatest(ctx, q.ID)
		if err != nil {
			return notFound(err, domain.ErrVersionNotFound)
		}
		if latest.ID != v.ID {
			return domain.ErrNotLatestVersion
		}

		switch _, err := r.Projects.GetByQuotationID(ctx, q.ID); {
		case err == nil:
			return domain.ErrAlreadyFinalized
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		now := u.now()
		if err := v.Finalize(now); err != nil {
			return err
		}
		if err := r.Versions.Save(ctx, v); err != nil {
			return err
		}

		p := &projectDomain.Project{
			ProjectID:    id.NewID32(),
			QuotationID:  q.ID,
			QuotationRef: q.QuotationID,
			VersionID:    v.ID,
			ConsumerID:   q.ConsumerID,
			CompanyID:    q.CompanyID,
			Status:       projectDomain.StatusInProgress,
			StartDate:    now,
			Steps:        projectDomain.NewSteps(),
		}
		if err := r.Projects.Create(ctx, p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyFinalized
			}
			return fmt.Errorf("create project: %w", err)
		}

		q.Status = domain.StatusAccepted
		q.StatusUpdatedAt = now
		if err := r.Quotations.Save(ctx, q); err != nil {
			return err
		}

		dto = &FinalizeDTO{
			Version:   *toVersionDTO(q.QuotationID, v),
			ProjectID: p.ProjectID,
			Status:    string(p.Status),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ExportVersion renders a version for either party of the quotation.
func (u *Usecase) ExportVersion(ctx context.Context, quotationID, versionID, actorID string) ([]byte, string, error) {
	if u.exporter == nil {
		return nil, "", errors.New("export not configured")
	}
	q, err := u.quotations.GetByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, "", notFound(err, domain.ErrNotFound)
	}
	if actorID != q.ConsumerID && actorID != q.CompanyID {
		return nil, "", domain.ErrNotOwner
	}
	v, err := versionOf(ctx, u.versions, q, versionID)
	if err != nil {
		return nil, "", err
	}
	b, err := u.exporter.ExportVersion(q, v)
	if err != nil {
		return nil, "", fmt.Errorf("export version %s: %w", v.VersionID, err)
	}
	name := fmt.Sprintf("quotation-%s-v%d.xlsx", q.QuotationID, v.VersionNumber)
	return b, name, nil
}
