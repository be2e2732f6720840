package mysql

import (
	"context"

	projectDomain "greenmarket-backend/internal/domain/project"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func orderedSteps(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }

// Create inserts the project and its steps in one statement group.
func (r *ProjectRepository) Create(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepository) Save(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *ProjectRepository) SaveStep(ctx context.Context, s *projectDomain.Step) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		Where("project_id = ?", projectID).
		First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) GetByProjectIDForUpdate(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("project_id = ?", projectID).
		First(&out)
	if res.Error != nil {
		return &out, res.Error
	}
	// steps are loaded separately so the lock only applies to the project row
	err := r.db.WithContext(ctx).
		Where("project_id = ?", out.ID).
		Order("position ASC").
		Find(&out.Steps).Error
	return &out, err
}

func (r *ProjectRepository) GetByQuotationID(ctx context.Context, quotationNumericID uint64) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		Where("quotation_id = ?", quotationNumericID).
		First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) ListCompleted(ctx context.Context, f projectDomain.Filter) ([]projectDomain.Project, error) {
	q := r.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		Where("status = ?", projectDomain.StatusCompleted)
	if f.ConsumerID != "" {
		q = q.Where("consumer_id = ?", f.ConsumerID)
	}
	if f.CompanyID != "" {
		q = q.Where("company_id = ?", f.CompanyID)
	}
	var out []projectDomain.Project
	res := q.Order("end_date DESC, id DESC").Find(&out)
	return out, res.Error
}
