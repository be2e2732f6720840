package project

import (
	"time"

	domain "greenmarket-backend/internal/domain/project"
)

type StepDTO struct {
	StepType    string     `json:"step_type"`
	Position    int        `json:"position"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ProjectDTO struct {
	ProjectID       string     `json:"project_id"`
	QuotationID     string     `json:"quotation_id"`
	ConsumerID      string     `json:"consumer_id"`
	CompanyID       string     `json:"company_id"`
	Status          string     `json:"status"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	FullyConfigured bool       `json:"fully_configured"`
	Steps           []StepDTO  `json:"steps"`
}

func toProjectDTO(p *domain.Project) *ProjectDTO {
	steps := make([]StepDTO, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, StepDTO{
			StepType:    string(s.StepType),
			Position:    s.Position,
			Status:      string(s.Status),
			CompletedAt: s.CompletedAt,
		})
	}
	return &ProjectDTO{
		ProjectID:       p.ProjectID,
		QuotationID:     p.QuotationRef,
		ConsumerID:      p.ConsumerID,
		CompanyID:       p.CompanyID,
		Status:          string(p.Status),
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		FullyConfigured: domain.IsFullyConfigured(p.Steps),
		Steps:           steps,
	}
}
