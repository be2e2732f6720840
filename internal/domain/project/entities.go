package project

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("project not found")
	ErrNotOwner             = errors.New("company does not own this project")
	ErrUnknownStep          = errors.New("unknown project step type")
	ErrStepOutOfOrder       = errors.New("previous project steps are not completed")
	ErrStepAlreadyCompleted = errors.New("project step already completed")
	ErrNotFullyConfigured   = errors.New("project does not have all required steps")
	ErrAlreadyCompleted     = errors.New("project already completed")
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

type StepType string

const (
	StepDeposit        StepType = "DEPOSIT"
	StepDocumentUpload StepType = "DOCUMENT_UPLOAD"
	StepFinalPayment   StepType = "FINAL_PAYMENT"
	StepInstallation   StepType = "INSTALLATION"
	StepCompletion     StepType = "COMPLETION"
)

// StepOrder is the required sequence of a project's steps.
var StepOrder = []StepType{StepDeposit, StepDocumentUpload, StepFinalPayment, StepInstallation, StepCompletion}

// Position is the 1-based place of t in StepOrder, or 0 if t is unknown.
func (t StepType) Position() int {
	for i, s := range StepOrder {
		if s == t {
			return i + 1
		}
	}
	return 0
}

func (t StepType) Valid() bool { return t.Position() > 0 }

type StepStatus string

const (
	StepPending   StepStatus = "PENDING"
	StepCompleted StepStatus = "COMPLETED"
)

// Project is the engagement created when a quotation version is finalized.
type Project struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	ProjectID    string         `gorm:"size:32;not null;uniqueIndex:ux_projects_project_id" json:"project_id"`
	QuotationID  uint64         `gorm:"not null;uniqueIndex:ux_projects_quotation" json:"-"`
	QuotationRef string         `gorm:"size:32;not null" json:"quotation_id"`
	VersionID    uint64         `gorm:"not null" json:"-"`
	ConsumerID   string         `gorm:"size:32;not null;index:idx_projects_consumer" json:"consumer_id"`
	CompanyID    string         `gorm:"size:32;not null;index:idx_projects_company" json:"company_id"`
	Status       Status         `gorm:"size:16;not null;default:'IN_PROGRESS';index" json:"status"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      *time.Time     `json:"end_date,omitempty"`
	Steps        []Step         `gorm:"foreignKey:ProjectID;references:ID" json:"steps"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }

type Step struct {
	ID          uint64     `gorm:"primaryKey;column:id" json:"-"`
	ProjectID   uint64     `gorm:"not null;uniqueIndex:ux_project_steps_type,priority:1" json:"-"`
	StepType    StepType   `gorm:"size:24;not null;uniqueIndex:ux_project_steps_type,priority:2" json:"step_type"`
	Position    int        `gorm:"not null" json:"position"`
	Status      StepStatus `gorm:"size:16;not null;default:'PENDING'" json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Step) TableName() string { return "project_steps" }

// NewSteps returns the five pending steps every project starts with.
func NewSteps() []Step {
	steps := make([]Step, 0, len(StepOrder))
	for i, t := range StepOrder {
		steps = append(steps, Step{StepType: t, Position: i + 1, Status: StepPending})
	}
	return steps
}

// IsFullyConfigured reports whether steps hold exactly one of each step type.
func IsFullyConfigured(steps []Step) bool {
	if len(steps) != len(StepOrder) {
		return false
	}
	seen := make(map[StepType]bool, len(steps))
	for _, s := range steps {
		if !s.StepType.Valid() || seen[s.StepType] {
			return false
		}
		seen[s.StepType] = true
	}
	return true
}

// CompleteStep marks step t done. Every earlier step must already be done;
// finishing COMPLETION completes the project. Returns the changed step.
func (p *Project) CompleteStep(t StepType, now time.Time) (*Step, error) {
	if !t.Valid() {
		return nil, ErrUnknownStep
	}
	if p.Status == StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	if !IsFullyConfigured(p.Steps) {
		return nil, ErrNotFullyConfigured
	}

	var target *Step
	for i := range p.Steps {
		s := &p.Steps[i]
		if s.StepType == t {
			target = s
			continue
		}
		if s.StepType.Position() < t.Position() && s.Status != StepCompleted {
			return nil, ErrStepOutOfOrder
		}
	}
	if target.Status == StepCompleted {
		return nil, ErrStepAlreadyCompleted
	}

	target.Status = StepCompleted
	target.CompletedAt = &now
	if t == StepCompletion {
		p.Status = StatusCompleted
		p.EndDate = &now
	}
	return target, nil
}

func (p *Project) IsCompleted() bool { return p.Status == StatusCompleted }
