package maintenance

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound            = errors.New("maintenance not found")
	ErrNotOwner            = errors.New("company does not own this project")
	ErrNotParty            = errors.New("actor is neither the consumer nor the company of this project")
	ErrProjectNotCompleted = errors.New("project is not completed")
	ErrMaintenancePending  = errors.New("maintenance pending")
	ErrInvalidTransition   = errors.New("maintenance not in a state that allows this action")
	ErrDateNotInFuture     = errors.New("maintenance date must be in the future")
	ErrReasonRequired      = errors.New("reason is required")
)

type Status string

const (
	StatusScheduled         Status = "SCHEDULED"
	StatusReschedulePending Status = "RESCHEDULE_PENDING"
	StatusConfirmed         Status = "CONFIRMED"
	StatusRejected          Status = "REJECTED"
	StatusCompleted         Status = "COMPLETED"
)

// IsActive reports whether a visit is booked: SCHEDULED or CONFIRMED.
func (s Status) IsActive() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// IsOpen reports whether a record still blocks scheduling a new cycle. A
// pending reschedule is open without being active.
func (s Status) IsOpen() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusReschedulePending:
		return true
	}
	return false
}

// Maintenance is a post-completion service visit of a project.
//
// OpenProjectID mirrors ProjectID while the record is open and is NULL once it
// is rejected or completed; its unique index allows one open cycle per project.
type Maintenance struct {
	ID               uint64     `gorm:"primaryKey;column:id" json:"-"`
	MaintenanceID    string     `gorm:"size:32;not null;uniqueIndex:ux_maintenances_maintenance_id" json:"maintenance_id"`
	ProjectID        uint64     `gorm:"not null;index:idx_maintenances_project" json:"-"`
	ProjectRef       string     `gorm:"size:32;not null" json:"project_id"`
	OpenProjectID    *uint64    `gorm:"uniqueIndex:ux_maintenances_open_project" json:"-"`
	Status           Status     `gorm:"size:24;not null;default:'SCHEDULED'" json:"status"`
	ScheduledDate    time.Time  `gorm:"type:date;not null" json:"scheduled_date"`
	ProposedDate     *time.Time `gorm:"type:date" json:"proposed_date,omitempty"`
	Notes            string     `gorm:"type:text" json:"notes,omitempty"`
	RescheduleReason string     `gorm:"type:text" json:"reschedule_reason,omitempty"`
	RejectionReason  string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	StatusUpdatedAt  time.Time  `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Maintenance) TableName() string { return "maintenances" }

// ValidateDate requires date to fall on a later calendar day than now (UTC).
func ValidateDate(date, now time.Time) error {
	if !day(date).After(day(now)) {
		return ErrDateNotInFuture
	}
	return nil
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// New schedules a first visit for a completed project.
func New(maintenanceID string, projectNumericID uint64, projectRef string, date time.Time, notes string, now time.Time) (*Maintenance, error) {
	if err := ValidateDate(date, now); err != nil {
		return nil, err
	}
	m := &Maintenance{
		MaintenanceID:   maintenanceID,
		ProjectID:       projectNumericID,
		ProjectRef:      projectRef,
		Status:          StatusScheduled,
		ScheduledDate:   day(date),
		Notes:           strings.TrimSpace(notes),
		StatusUpdatedAt: now,
	}
	m.syncOpenSlot()
	return m, nil
}

// RequestReschedule proposes a new date; the visit waits for confirmation.
func (m *Maintenance) RequestReschedule(date time.Time, reason string, now time.Time) error {
	if m.Status != StatusScheduled && m.Status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if err := ValidateDate(date, now); err != nil {
		return err
	}
	proposed := day(date)
	m.ProposedDate = &proposed
	m.RescheduleReason = strings.TrimSpace(reason)
	m.setStatus(StatusReschedulePending, now)
	return nil
}

// Confirm accepts the visit; a pending proposal becomes the scheduled date.
func (m *Maintenance) Confirm(now time.Time) error {
	switch m.Status {
	case StatusScheduled:
	case StatusReschedulePending:
		if m.ProposedDate != nil {
			m.ScheduledDate = *m.ProposedDate
			m.ProposedDate = nil
		}
	default:
		return ErrInvalidTransition
	}
	m.setStatus(StatusConfirmed, now)
	return nil
}

func (m *Maintenance) Reject(reason string, now time.Time) error {
	if m.Status != StatusReschedulePending {
		return ErrInvalidTransition
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	m.RejectionReason = reason
	m.setStatus(StatusRejected, now)
	return nil
}

func (m *Maintenance) Complete(now time.Time) error {
	if m.Status != StatusConfirmed {
		return ErrInvalidTransition
	}
	m.CompletedAt = &now
	m.setStatus(StatusCompleted, now)
	return nil
}

func (m *Maintenance) setStatus(s Status, now time.Time) {
	m.Status = s
	m.StatusUpdatedAt = now
	m.syncOpenSlot()
}

func (m *Maintenance) syncOpenSlot() {
	if m.Status.IsOpen() {
		pid := m.ProjectID
		m.OpenProjectID = &pid
		return
	}
	m.OpenProjectID = nil
}

// HasActive reports whether any record in list is active.
func HasActive(list []Maintenance) bool {
	for _, m := range list {
		if m.Status.IsActive() {
			return true
		}
	}
	return false
}
