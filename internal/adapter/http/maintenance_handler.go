package http

import (
	"net/http"
	"time"

	"greenmarket-backend/internal/usecase/maintenance"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type MaintenanceHandler struct{ uc *maintenance.Usecase }

func NewMaintenanceHandler(uc *maintenance.Usecase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

type scheduleReq struct {
	ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Notes         string `json:"notes"`
}

type rescheduleReq struct {
	ProposedDate string `json:"proposed_date" validate:"required,datetime=2006-01-02"`
	Reason       string `json:"reason"`
}

type rejectReq struct {
	Reason string `json:"reason" validate:"required"`
}

// ListByProject also reports whether a SCHEDULED or CONFIRMED visit exists.
func (h *MaintenanceHandler) ListByProject(c echo.Context) error {
	pid, ok, err := pathID(c, "project_id")
	if !ok {
		return err
	}
	list, active, err := h.uc.ListByProject(c.Request().Context(), pid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"maintenances":       list,
		"active_maintenance": active,
	})
}

// Schedule is issued by the company that owns the project.
func (h *MaintenanceHandler) Schedule(c echo.Context) error {
	pid, ok, err := pathID(c, "project_id")
	if !ok {
		return err
	}
	companyID, ok, err := actorID(c)
	if !ok {
		return err
	}
	var req scheduleReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	date, _ := time.Parse(dateLayout, req.ScheduledDate)
	dto, err := h.uc.Schedule(c.Request().Context(), maintenance.ScheduleInput{
		ProjectID:     pid,
		CompanyID:     companyID,
		ScheduledDate: date,
		Notes:         req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MaintenanceHandler) GetMaintenance(c echo.Context) error {
	mid, ok, err := pathID(c, "maintenance_id")
	if !ok {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), mid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// RequestReschedule is open to the consumer or the company of the project.
func (h *MaintenanceHandler) RequestReschedule(c echo.Context) error {
	mid, ok, err := pathID(c, "maintenance_id")
	if !ok {
		return err
	}
	actor, ok, err := actorID(c)
	if !ok {
		return err
	}
	var req rescheduleReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	date, _ := time.Parse(dateLayout, req.ProposedDate)
	dto, err := h.uc.RequestReschedule(c.Request().Context(), mid, actor, date, req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Confirm, Reject and Complete are issued by the owning company.
func (h *MaintenanceHandler) Confirm(c echo.Context) error {
	mid, ok, err := pathID(c, "maintenance_id")
	if !ok {
		return err
	}
	companyID, ok, err := actorID(c)
	if !ok {
		return err
	}
	dto, err := h.uc.Confirm(c.Request().Context(), mid, companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MaintenanceHandler) Reject(c echo.Context) error {
	mid, ok, err := pathID(c, "maintenance_id")
	if !ok {
		return err
	}
	companyID, ok, err := actorID(c)
	if !ok {
		return err
	}
	var req rejectReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Reject(c.Request().Context(), mid, companyID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MaintenanceHandler) Complete(c echo.Context) error {
	mid, ok, err := pathID(c, "maintenance_id")
	if !ok {
		return err
	}
	companyID, ok, err := actorID(c)
	if !ok {
		return err
	}
	dto, err := h.uc.Complete(c.Request().Context(), mid, companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
