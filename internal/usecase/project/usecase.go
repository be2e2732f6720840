package project

import (
	"context"
	"errors"
	"time"

	domain "greenmarket-backend/internal/domain/project"
	"greenmarket-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) Get(ctx context.Context, projectID string) (*ProjectDTO, error) {
	p, err := u.repo.GetByProjectID(ctx, projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toProjectDTO(p), nil
}

// ListCompleted returns finished projects, optionally narrowed to one party.
func (u *Usecase) ListCompleted(ctx context.Context, f domain.Filter) ([]ProjectDTO, error) {
	list, err := u.repo.ListCompleted(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ProjectDTO, 0, len(list))
	for i := range list {
		out = append(out, *toProjectDTO(&list[i]))
	}
	return out, nil
}

// CompleteStep marks one step done in declared order; the COMPLETION step
// also completes the project. Only the installing company records progress.
func (u *Usecase) CompleteStep(ctx context.Context, projectID, companyID string, stepType domain.StepType) (*ProjectDTO, error) {
	if !stepType.Valid() {
		return nil, domain.ErrUnknownStep
	}
	var dto *ProjectDTO
	err := u.uow.WithinProjectTx(ctx, projectID, func(r uow.Repos, p *domain.Project) error {
		if p.CompanyID != companyID {
			return domain.ErrNotOwner
		}
		s, err := p.CompleteStep(stepType, u.now())
		if err != nil {
			return err
		}
		if err := r.Projects.SaveStep(ctx, s); err != nil {
			return err
		}
		if p.IsCompleted() {
			if err := r.Projects.Save(ctx, p); err != nil {
				return err
			}
		}
		dto = toProjectDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
