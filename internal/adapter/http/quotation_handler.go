package http

import (
	"net/http"
	"strconv"

	domain "greenmarket-backend/internal/domain/quotation"
	"greenmarket-backend/internal/usecase/quotation"

	"github.com/labstack/echo/v4"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type QuotationHandler struct{ uc *quotation.Usecase }

func NewQuotationHandler(uc *quotation.Usecase) *QuotationHandler { return &QuotationHandler{uc: uc} }

type requestQuotationReq struct {
	CompanyID          string  `json:"company_id" validate:"required,hex32"`
	ConsumerName       string  `json:"consumer_name" validate:"required,max=255"`
	ConsumerEmail      string  `json:"consumer_email" validate:"omitempty,email"`
	ConsumerPhone      string  `json:"consumer_phone" validate:"max=32"`
	Address            string  `json:"address" validate:"required"`
	PropertyType       string  `json:"property_type" validate:"max=64"`
	AvgElectricityBill float64 `json:"avg_electricity_bill" validate:"required,gt=0,dec2"`
	RoofArea           float64 `json:"roof_area" validate:"gte=0"`
}

type costItemReq struct {
	Item      string  `json:"item"`
	Quantity  float64 `json:"quantity" validate:"gte=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0,dec2"`
}

type timelinePhaseReq struct {
	Phase       string `json:"phase"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`
}

// Drafts may be partial; completeness is checked on submit.
type versionReq struct {
	SystemSize                string             `json:"system_size" validate:"max=64"`
	PanelSpecifications       string             `json:"panel_specifications"`
	EstimatedEnergyProduction string             `json:"estimated_energy_production" validate:"max=128"`
	Savings                   string             `json:"savings" validate:"max=128"`
	PaybackPeriod             string             `json:"payback_period" validate:"max=64"`
	ROI                       string             `json:"roi" validate:"max=64"`
	Incentives                string             `json:"incentives"`
	ProductWarranties         string             `json:"product_warranties"`
	CostBreakdown             []costItemReq      `json:"cost_breakdown" validate:"dive"`
	Timeline                  []timelinePhaseReq `json:"timeline" validate:"dive"`
}

func (r versionReq) details() domain.Details {
	d := domain.Details{
		SystemSize:                r.SystemSize,
		PanelSpecifications:       r.PanelSpecifications,
		EstimatedEnergyProduction: r.EstimatedEnergyProduction,
		Savings:                   r.Savings,
		PaybackPeriod:             r.PaybackPeriod,
		ROI:                       r.ROI,
		Incentives:                r.Incentives,
		ProductWarranties:         r.ProductWarranties,
		CostBreakdown:             make([]domain.CostItem, 0, len(r.CostBreakdown)),
		Timeline:                  make([]domain.TimelinePhase, 0, len(r.Timeline)),
	}
	for _, c := range r.CostBreakdown {
		d.CostBreakdown = append(d.CostBreakdown, domain.CostItem{Item: c.Item, Quantity: c.Quantity, UnitPrice: c.UnitPrice})
	}
	for _, t := range r.Timeline {
		d.Timeline = append(d.Timeline, domain.TimelinePhase(t))
	}
	return d
}

// RequestQuotation is sent by the consumer named in X-Actor-Id.
func (h *QuotationHandler) RequestQuotation(c echo.Context) error {
	consumerID, ok, err := actorID(c)
	if !ok {
		return err
	}
	var req requestQuotationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.RequestQuotation(c.Request().Context(), quotation.RequestQuotationInput{
		ConsumerID:         consumerID,
		CompanyID:          req.CompanyID,
		ConsumerName:       req.ConsumerName,
		ConsumerEmail:      req.ConsumerEmail,
		ConsumerPhone:      req.ConsumerPhone,
		Address:            req.Address,
		PropertyType:       req.PropertyType,
		AvgElectricityBill: req.AvgElectricityBill,
		RoofArea:           req.RoofArea,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *QuotationHandler) GetQuotation(c echo.Context) error {
	qid, ok, err := pathID(c, "quotation_id")
	if !ok {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), qid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type listQuotationsReq struct {
	ConsumerID string `query:"consumer_id" json:"consumer_id" validate:"omitempty,hex32"`
	CompanyID  string `query:"company_id" json:"company_id" validate:"omitempty,hex32"`
}

// ListQuotations lists by exactly one of consumer_id or company_id.
func (h *QuotationHandler) ListQuotations(c echo.Context) error {
	var req listQuotationsReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if (req.ConsumerID == "") == (req.CompanyID == "") {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "_", Message: "exactly one of consumer_id or company_id is required"}},
		})
	}
	var (
		list []quotation.QuotationDTO
		err  error
	)
	if req.ConsumerID != "" {
		list, err = h.uc.ListByConsumer(c.Request().Context(), req.ConsumerID)
	} else {
		list, err = h.uc.ListByCompany(c.Request().Context(), req.CompanyID)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"quotations": list})
}

func (h *QuotationHandler) ListVersions(c echo.Context) error {
	qid, ok, err := pathID(c, "quotation_id")
	if !ok {
		return err
	}
	list, err := h.uc.ListVersions(c.Request().Context(), qid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"versions": list})
}

func (h *QuotationHandler) GetVersion(c echo.Context) error {
	qid, vid, ok, err := versionPath(c)
	if !ok {
		return err
	}
	dto, err := h.uc.GetVersion(c.Request().Context(), qid, vid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *QuotationHandler) CreateDraft(c echo.Context) error {
	qid, ok, err := pathID(c, "quotation_id")
	if !ok {
		return err
	}
	companyID, ok, err := actorID(c)
	if !ok {
		return err
	}
	var req versionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.CreateDraft(c.Request().Context(), quotation.DraftInput{
		QuotationID: qid,
		CompanyID:   companyID,
		Details:     req.details(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *QuotationHandler) UpdateDraft(c echo.Context) error {
	qid, vid, ok, err := versionPath(c)
	if !ok {
		return err
	}
	companyID, ok, err := actorID(c)
	if !ok {
		return err
	}
	var req versionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateDraft(c.Request().Context(), quotation.DraftInput{
		QuotationID: qid,
		VersionID:   vid,
		CompanyID:   companyID,
		Details:     req.details(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *QuotationHandler) SubmitVersion(c echo.Context) error {
	qid, vid, ok, err := versionPath(c)
	if !ok {
		return err
	}
	companyID, ok, err := actorID(c)
	if !ok {
		return err
	}
	dto, err := h.uc.SubmitVersion(c.Request().Context(), qid, vid, companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// FinalizeVersion accepts a submitted version and opens the project.
func (h *QuotationHandler) FinalizeVersion(c echo.Context) error {
	qid, vid, ok, err := versionPath(c)
	if !ok {
		return err
	}
	dto, err := h.uc.FinalizeVersion(c.Request().Context(), qid, vid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ExportVersion streams the version as an xlsx attachment.
func (h *QuotationHandler) ExportVersion(c echo.Context) error {
	qid, vid, ok, err := versionPath(c)
	if !ok {
		return err
	}
	actor, ok, err := actorID(c)
	if !ok {
		return err
	}
	b, name, err := h.uc.ExportVersion(c.Request().Context(), qid, vid, actor)
	if err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+strconv.Quote(name))
	return c.Blob(http.StatusOK, mimeXLSX, b)
}

func versionPath(c echo.Context) (string, string, bool, error) {
	qid, ok, err := pathID(c, "quotation_id")
	if !ok {
		return "", "", false, err
	}
	vid, ok, err := pathID(c, "version_id")
	if !ok {
		return "", "", false, err
	}
	return qid, vid, true, nil
}
