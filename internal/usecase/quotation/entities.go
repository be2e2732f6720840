package quotation

import (
	"time"

	domain "greenmarket-backend/internal/domain/quotation"
)

type RequestQuotationInput struct {
	ConsumerID         string
	CompanyID          string
	ConsumerName       string
	ConsumerEmail      string
	ConsumerPhone      string
	Address            string
	PropertyType       string
	AvgElectricityBill float64
	RoofArea           float64
}

// DraftInput carries the editable version fields. VersionID is ignored on create.
type DraftInput struct {
	QuotationID string
	VersionID   string
	CompanyID   string // acting company, must own the quotation
	Details     domain.Details
}

type QuotationDTO struct {
	QuotationID        string    `json:"quotation_id"`
	ConsumerID         string    `json:"consumer_id"`
	CompanyID          string    `json:"company_id"`
	ConsumerName       string    `json:"consumer_name"`
	ConsumerEmail      string    `json:"consumer_email"`
	ConsumerPhone      string    `json:"consumer_phone"`
	Address            string    `json:"address"`
	PropertyType       string    `json:"property_type"`
	AvgElectricityBill float64   `json:"avg_electricity_bill"`
	RoofArea           float64   `json:"roof_area"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type VersionDTO struct {
	VersionID     string     `json:"version_id"`
	QuotationID   string     `json:"quotation_id"`
	VersionNumber int        `json:"version_number"`
	Status        string     `json:"status"`
	TotalCost     float64    `json:"total_cost"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	FinalizedAt   *time.Time `json:"finalized_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	domain.Details
}

type FinalizeDTO struct {
	Version   VersionDTO `json:"version"`
	ProjectID string     `json:"project_id"`
	Status    string     `json:"project_status"`
}

func toQuotationDTO(q *domain.Quotation) *QuotationDTO {
	return &QuotationDTO{
		QuotationID:        q.QuotationID,
		ConsumerID:         q.ConsumerID,
		CompanyID:          q.CompanyID,
		ConsumerName:       q.ConsumerName,
		ConsumerEmail:      q.ConsumerEmail,
		ConsumerPhone:      q.ConsumerPhone,
		Address:            q.Address,
		PropertyType:       q.PropertyType,
		AvgElectricityBill: q.AvgElectricityBill,
		RoofArea:           q.RoofArea,
		Status:             string(q.Status),
		CreatedAt:          q.CreatedAt,
	}
}

func toVersionDTO(quotationID string, v *domain.Version) *VersionDTO {
	return &VersionDTO{
		VersionID:     v.VersionID,
		QuotationID:   quotationID,
		VersionNumber: v.VersionNumber,
		Status:        string(v.Status),
		TotalCost:     v.TotalCost,
		SubmittedAt:   v.SubmittedAt,
		FinalizedAt:   v.FinalizedAt,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
		Details: domain.Details{
			SystemSize:                v.SystemSize,
			PanelSpecifications:       v.PanelSpecifications,
			EstimatedEnergyProduction: v.EstimatedEnergyProduction,
			Savings:                   v.Savings,
			PaybackPeriod:             v.PaybackPeriod,
			ROI:                       v.ROI,
			Incentives:                v.Incentives,
			ProductWarranties:         v.ProductWarranties,
			CostBreakdown:             v.CostBreakdown,
			Timeline:                  v.Timeline,
		},
	}
}
