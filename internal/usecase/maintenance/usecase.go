package maintenance

import (
	"context"
	"errors"
	"time"

	domain "greenmarket-backend/internal/domain/maintenance"
	projectDomain "greenmarket-backend/internal/domain/project"
	"greenmarket-backend/internal/domain/uow"
	"greenmarket-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo     domain.Repository
	projects projectDomain.Repository
	uow      uow.UnitOfWork
	now      func() time.Time
}

func NewUsecase(r domain.Repository, projects projectDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, projects: projects, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// Schedule opens a maintenance cycle on a completed project. Only one cycle
// per project may be open at a time.
func (u *Usecase) Schedule(ctx context.Context, in ScheduleInput) (*MaintenanceDTO, error) {
	var dto *MaintenanceDTO
	err := u.uow.WithinProjectTx(ctx, in.ProjectID, func(r uow.Repos, p *projectDomain.Project) error {
		if p.CompanyID != in.CompanyID {
			return domain.ErrNotOwner
		}
		if !p.IsCompleted() {
			return domain.ErrProjectNotCompleted
		}

		switch _, err := r.Maintenances.GetOpenByProject(ctx, p.ID); {
		case err == nil:
			return domain.ErrMaintenancePending
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		m, err := domain.New(id.NewID32(), p.ID, p.ProjectID, in.ScheduledDate, in.Notes, u.now())
		if err != nil {
			return err
		}
		if err := r.Maintenances.Create(ctx, m); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrMaintenancePending
			}
			return err
		}
		dto = toDTO(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// transition loads and locks one maintenance, checks the actor against its
// project with allowed, applies fn and saves it.
func (u *Usecase) transition(ctx context.Context, maintenanceID, actorID string, allowed func(p *projectDomain.Project, actorID string) error, fn func(m *domain.Maintenance, now time.Time) error) (*MaintenanceDTO, error) {
	var dto *MaintenanceDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := r.Maintenances.GetByMaintenanceIDForUpdate(ctx, maintenanceID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		p, err := r.Projects.GetByProjectID(ctx, m.ProjectRef)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projectDomain.ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := allowed(p, actorID); err != nil {
			return err
		}
		if err := fn(m, u.now()); err != nil {
			return err
		}
		if err := r.Maintenances.Save(ctx, m); err != nil {
			return err
		}
		dto = toDTO(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func ownerOnly(p *projectDomain.Project, actorID string) error {
	if p.CompanyID != actorID {
		return domain.ErrNotOwner
	}
	return nil
}

func eitherParty(p *projectDomain.Project, actorID string) error {
	if p.CompanyID != actorID && p.ConsumerID != actorID {
		return domain.ErrNotParty
	}
	return nil
}

// RequestReschedule may come from the consumer or the company.
func (u *Usecase) RequestReschedule(ctx context.Context, maintenanceID, actorID string, date time.Time, reason string) (*MaintenanceDTO, error) {
	return u.transition(ctx, maintenanceID, actorID, eitherParty, func(m *domain.Maintenance, now time.Time) error {
		return m.RequestReschedule(date, reason, now)
	})
}

func (u *Usecase) Confirm(ctx context.Context, maintenanceID, companyID string) (*MaintenanceDTO, error) {
	return u.transition(ctx, maintenanceID, companyID, ownerOnly, func(m *domain.Maintenance, now time.Time) error {
		return m.Confirm(now)
	})
}

func (u *Usecase) Reject(ctx context.Context, maintenanceID, companyID, reason string) (*MaintenanceDTO, error) {
	return u.transition(ctx, maintenanceID, companyID, ownerOnly, func(m *domain.Maintenance, now time.Time) error {
		return m.Reject(reason, now)
	})
}

func (u *Usecase) Complete(ctx context.Context, maintenanceID, companyID string) (*MaintenanceDTO, error) {
	return u.transition(ctx, maintenanceID, companyID, ownerOnly, func(m *domain.Maintenance, now time.Time) error {
		return m.Complete(now)
	})
}

func (u *Usecase) Get(ctx context.Context, maintenanceID string) (*MaintenanceDTO, error) {
	m, err := u.repo.GetByMaintenanceID(ctx, maintenanceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDTO(m), nil
}

func (u *Usecase) project(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	p, err := u.projects.GetByProjectID(ctx, projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, projectDomain.ErrNotFound
	}
	return p, err
}

// ListByProject returns the project's maintenance history, newest first,
// and whether a visit is still active.
func (u *Usecase) ListByProject(ctx context.Context, projectID string) ([]MaintenanceDTO, bool, error) {
	p, err := u.project(ctx, projectID)
	if err != nil {
		return nil, false, err
	}
	list, err := u.repo.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, false, err
	}
	out := make([]MaintenanceDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, domain.HasActive(list), nil
}

func (u *Usecase) HasActiveMaintenance(ctx context.Context, projectID string) (bool, error) {
	_, active, err := u.ListByProject(ctx, projectID)
	return active, err
}
