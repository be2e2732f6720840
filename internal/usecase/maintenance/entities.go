package maintenance

import (
	"time"

	domain "greenmarket-backend/internal/domain/maintenance"
)

type ScheduleInput struct {
	ProjectID     string
	CompanyID     string // acting company, must own the project
	ScheduledDate time.Time
	Notes         string
}

type MaintenanceDTO struct {
	MaintenanceID    string     `json:"maintenance_id"`
	ProjectID        string     `json:"project_id"`
	Status           string     `json:"status"`
	ScheduledDate    string     `json:"scheduled_date"`
	ProposedDate     string     `json:"proposed_date,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	RescheduleReason string     `json:"reschedule_reason,omitempty"`
	RejectionReason  string     `json:"rejection_reason,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	StatusUpdatedAt  time.Time  `json:"status_updated_at"`
}

const dateLayout = "2006-01-02"

func toDTO(m *domain.Maintenance) *MaintenanceDTO {
	dto := &MaintenanceDTO{
		MaintenanceID:    m.MaintenanceID,
		ProjectID:        m.ProjectRef,
		Status:           string(m.Status),
		ScheduledDate:    m.ScheduledDate.UTC().Format(dateLayout),
		Notes:            m.Notes,
		RescheduleReason: m.RescheduleReason,
		RejectionReason:  m.RejectionReason,
		CompletedAt:      m.CompletedAt,
		StatusUpdatedAt:  m.StatusUpdatedAt,
	}
	if m.ProposedDate != nil {
		dto.ProposedDate = m.ProposedDate.UTC().Format(dateLayout)
	}
	return dto
}
