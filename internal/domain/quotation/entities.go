package quotation

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("quotation not found")
	ErrVersionNotFound    = errors.New("quotation version not found")
	ErrNotOwner           = errors.New("company does not own this quotation")
	ErrQuotationClosed    = errors.New("quotation already accepted")
	ErrDraftExists        = errors.New("quotation already has a draft version")
	ErrVersionNotEditable = errors.New("only draft versions can be changed")
	ErrNotSubmitted       = errors.New("only submitted versions can be finalized")
	ErrNotLatestVersion   = errors.New("only the latest version can be finalized")
	ErrAlreadyFinalized   = errors.New("quotation already finalized")
	ErrIncompleteVersion  = errors.New("quotation version is incomplete")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
)

// Quotation is a consumer's request to one company, with the property
// snapshot taken at request time. It owns its versions.
type Quotation struct {
	ID                 uint64         `gorm:"primaryKey;column:id" json:"-"`
	QuotationID        string         `gorm:"size:32;not null;uniqueIndex:ux_quotations_quotation_id" json:"quotation_id"`
	ConsumerID         string         `gorm:"size:32;not null;index:idx_quotations_consumer" json:"consumer_id"`
	CompanyID          string         `gorm:"size:32;not null;index:idx_quotations_company" json:"company_id"`
	ConsumerName       string         `gorm:"size:255" json:"consumer_name"`
	ConsumerEmail      string         `gorm:"size:255" json:"consumer_email"`
	ConsumerPhone      string         `gorm:"size:32" json:"consumer_phone"`
	Address            string         `gorm:"type:text" json:"address"`
	PropertyType       string         `gorm:"size:64" json:"property_type"`
	AvgElectricityBill float64        `gorm:"type:decimal(12,2)" json:"avg_electricity_bill"`
	RoofArea           float64        `gorm:"type:decimal(10,2)" json:"roof_area"`
	Status             Status         `gorm:"size:16;not null;default:'PENDING'" json:"status"`
	StatusUpdatedAt    time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Quotation) TableName() string { return "quotations" }

type VersionStatus string

const (
	VersionDraft     VersionStatus = "DRAFT"
	VersionSubmitted VersionStatus = "SUBMITTED"
	VersionFinalized VersionStatus = "FINALIZED"
)

func (s VersionStatus) Valid() bool {
	switch s {
	case VersionDraft, VersionSubmitted, VersionFinalized:
		return true
	}
	return false
}

type CostItem struct {
	Item       string  `json:"item"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// TimelinePhase dates are calendar dates (YYYY-MM-DD).
type TimelinePhase struct {
	Phase       string `json:"phase"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Details are the company-editable technical and financial fields of a version.
type Details struct {
	SystemSize                string          `json:"system_size"`
	PanelSpecifications       string          `json:"panel_specifications"`
	EstimatedEnergyProduction string          `json:"estimated_energy_production"`
	Savings                   string          `json:"savings"`
	PaybackPeriod             string          `json:"payback_period"`
	ROI                       string          `json:"roi"`
	Incentives                string          `json:"incentives"`
	ProductWarranties         string          `json:"product_warranties"`
	CostBreakdown             []CostItem      `json:"cost_breakdown"`
	Timeline                  []TimelinePhase `json:"timeline"`
}

// Version is one drafted/submitted iteration of a quotation.
//
// OpenDraftQuotationID mirrors QuotationID while the version is a DRAFT and is
// NULL otherwise; its unique index allows at most one draft per quotation.
type Version struct {
	ID                        uint64                             `gorm:"primaryKey;column:id" json:"-"`
	VersionID                 string                             `gorm:"size:32;not null;uniqueIndex:ux_versions_version_id" json:"version_id"`
	QuotationID               uint64                             `gorm:"not null;uniqueIndex:ux_versions_quotation_number,priority:1" json:"-"`
	VersionNumber             int                                `gorm:"not null;uniqueIndex:ux_versions_quotation_number,priority:2" json:"version_number"`
	OpenDraftQuotationID      *uint64                            `gorm:"uniqueIndex:ux_versions_open_draft" json:"-"`
	Status                    VersionStatus                      `gorm:"size:16;not null;default:'DRAFT'" json:"status"`
	SystemSize                string                             `gorm:"size:64" json:"system_size"`
	PanelSpecifications       string                             `gorm:"type:text" json:"panel_specifications"`
	EstimatedEnergyProduction string                             `gorm:"size:128" json:"estimated_energy_production"`
	Savings                   string                             `gorm:"size:128" json:"savings"`
	PaybackPeriod             string                             `gorm:"size:64" json:"payback_period"`
	ROI                       string                             `gorm:"column:roi;size:64" json:"roi"`
	Incentives                string                             `gorm:"type:text" json:"incentives"`
	ProductWarranties         string                             `gorm:"type:text" json:"product_warranties"`
	CostBreakdown             datatypes.JSONSlice[CostItem]      `json:"cost_breakdown"`
	Timeline                  datatypes.JSONSlice[TimelinePhase] `json:"timeline"`
	TotalCost                 float64                            `gorm:"type:decimal(15,2)" json:"total_cost"`
	SubmittedAt               *time.Time                         `json:"submitted_at,omitempty"`
	FinalizedAt               *time.Time                         `json:"finalized_at,omitempty"`
	CreatedAt                 time.Time                          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time                          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Version) TableName() string { return "quotation_versions" }

// NewDraft builds version number n of quotation quotationID.
func NewDraft(versionID string, quotationID uint64, n int, d Details) *Version {
	v := &Version{
		VersionID:     versionID,
		QuotationID:   quotationID,
		VersionNumber: n,
		Status:        VersionDraft,
	}
	v.Apply(d)
	v.syncDraftSlot()
	return v
}

// Apply overwrites the editable fields in place.
func (v *Version) Apply(d Details) {
	v.SystemSize = d.SystemSize
	v.PanelSpecifications = d.PanelSpecifications
	v.EstimatedEnergyProduction = d.EstimatedEnergyProduction
	v.Savings = d.Savings
	v.PaybackPeriod = d.PaybackPeriod
	v.ROI = d.ROI
	v.Incentives = d.Incentives
	v.ProductWarranties = d.ProductWarranties
	v.CostBreakdown = append(datatypes.JSONSlice[CostItem]{}, d.CostBreakdown...)
	v.Timeline = append(datatypes.JSONSlice[TimelinePhase]{}, d.Timeline...)
	v.TotalCost = v.costTotal()
}

func (v *Version) costTotal() float64 {
	var total float64
	for _, row := range v.CostBreakdown {
		total += row.Quantity * row.UnitPrice
	}
	return total
}

// Submit moves a complete DRAFT to SUBMITTED and prices each cost row.
func (v *Version) Submit(now time.Time) error {
	if v.Status != VersionDraft {
		return ErrVersionNotEditable
	}
	if err := v.ValidateForSubmit(); err != nil {
		return err
	}
	for i := range v.CostBreakdown {
		v.CostBreakdown[i].TotalPrice = v.CostBreakdown[i].Quantity * v.CostBreakdown[i].UnitPrice
	}
	v.TotalCost = v.costTotal()
	v.Status = VersionSubmitted
	v.SubmittedAt = &now
	v.syncDraftSlot()
	return nil
}

func (v *Version) Finalize(now time.Time) error {
	switch v.Status {
	case VersionSubmitted:
	case VersionFinalized:
		return ErrAlreadyFinalized
	default:
		return ErrNotSubmitted
	}
	v.Status = VersionFinalized
	v.FinalizedAt = &now
	v.syncDraftSlot()
	return nil
}

func (v *Version) syncDraftSlot() {
	if v.Status == VersionDraft {
		qid := v.QuotationID
		v.OpenDraftQuotationID = &qid
		return
	}
	v.OpenDraftQuotationID = nil
}
