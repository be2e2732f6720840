package project

import "context"

// Filter narrows listings; empty fields are ignored.
type Filter struct {
	ConsumerID string
	CompanyID  string
}

type Repository interface {
	// Create inserts the project together with its steps.
	Create(ctx context.Context, p *Project) error
	// Save updates the project row only; steps go through SaveStep.
	Save(ctx context.Context, p *Project) error
	SaveStep(ctx context.Context, s *Step) error
	GetByProjectID(ctx context.Context, projectID string) (*Project, error)
	GetByProjectIDForUpdate(ctx context.Context, projectID string) (*Project, error)
	GetByQuotationID(ctx context.Context, quotationNumericID uint64) (*Project, error)
	ListCompleted(ctx context.Context, f Filter) ([]Project, error)
}
