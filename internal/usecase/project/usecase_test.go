package project

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "greenmarket-backend/internal/domain/project"
	"greenmarket-backend/internal/domain/uow"
	"greenmarket-backend/internal/testutil/projectmock"
	"greenmarket-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

const companyID = "cccccccccccccccccccccccccccccccc"

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newProject() *domain.Project {
	return &domain.Project{ID: 5, ProjectID: "P-1", QuotationRef: "Q-1", CompanyID: companyID, Status: domain.StatusInProgress, Steps: domain.NewSteps()}
}

func newUsecase(p *domain.Project, repo *projectmock.Repo) *Usecase {
	repo.GetByProjectIDForUpdateFn = func(_ context.Context, id string) (*domain.Project, error) {
		if p == nil || id != p.ProjectID {
			return nil, gorm.ErrRecordNotFound
		}
		return p, nil
	}
	uc := NewUsecase(repo, uowmock.Passthrough(uow.Repos{Projects: repo}))
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestUsecase_Get(t *testing.T) {
	repo := &projectmock.Repo{
		GetByProjectIDFn: func(_ context.Context, id string) (*domain.Project, error) {
			if id == "P-1" {
				return newProject(), nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo, nil)

	dto, err := uc.Get(context.Background(), "P-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !dto.FullyConfigured || len(dto.Steps) != 5 || dto.QuotationID != "Q-1" {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if _, err := uc.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUsecase_CompleteStep_AllInOrder(t *testing.T) {
	p := newProject()
	var savedSteps, savedProject int
	repo := &projectmock.Repo{
		SaveStepFn: func(context.Context, *domain.Step) error { savedSteps++; return nil },
		SaveFn:     func(context.Context, *domain.Project) error { savedProject++; return nil },
	}
	uc := newUsecase(p, repo)

	var dto *ProjectDTO
	for _, st := range domain.StepOrder {
		var err error
		if dto, err = uc.CompleteStep(context.Background(), "P-1", companyID, st); err != nil {
			t.Fatalf("CompleteStep(%s): %v", st, err)
		}
	}
	if dto.Status != string(domain.StatusCompleted) || dto.EndDate == nil || !dto.EndDate.Equal(fixedNow) {
		t.Fatalf("project not completed: %+v", dto)
	}
	if savedSteps != 5 || savedProject != 1 {
		t.Fatalf("saves: steps=%d project=%d", savedSteps, savedProject)
	}
}

func TestUsecase_CompleteStep_Errors(t *testing.T) {
	tests := []struct {
		name      string
		projectID string
		actor     string
		step      domain.StepType
		want      error
	}{
		{"out of order", "P-1", companyID, domain.StepFinalPayment, domain.ErrStepOutOfOrder},
		{"unknown step", "P-1", companyID, "ROOF_CHECK", domain.ErrUnknownStep},
		{"missing project", "nope", companyID, domain.StepDeposit, domain.ErrNotFound},
		{"other company", "P-1", "dddddddddddddddddddddddddddddddd", domain.StepDeposit, domain.ErrNotOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &projectmock.Repo{
				SaveStepFn: func(context.Context, *domain.Step) error {
					t.Fatal("step saved on rejected transition")
					return nil
				},
			}
			uc := newUsecase(newProject(), repo)
			if _, err := uc.CompleteStep(context.Background(), tt.projectID, tt.actor, tt.step); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUsecase_ListCompleted(t *testing.T) {
	var got domain.Filter
	repo := &projectmock.Repo{
		ListCompletedFn: func(_ context.Context, f domain.Filter) ([]domain.Project, error) {
			got = f
			return []domain.Project{*newProject(), *newProject()}, nil
		},
	}
	list, err := NewUsecase(repo, nil).ListCompleted(context.Background(), domain.Filter{CompanyID: "a1"})
	if err != nil || len(list) != 2 {
		t.Fatalf("ListCompleted = %d, %v", len(list), err)
	}
	if got.CompanyID != "a1" || got.ConsumerID != "" {
		t.Fatalf("filter not forwarded: %+v", got)
	}
}
