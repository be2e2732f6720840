package http

import (
	"net/http"

	domain "greenmarket-backend/internal/domain/project"
	"greenmarket-backend/internal/usecase/project"

	"github.com/labstack/echo/v4"
)

type ProjectHandler struct{ uc *project.Usecase }

func NewProjectHandler(uc *project.Usecase) *ProjectHandler { return &ProjectHandler{uc: uc} }

func (h *ProjectHandler) GetProject(c echo.Context) error {
	pid, ok, err := pathID(c, "project_id")
	if !ok {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), pid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type completedProjectsReq struct {
	ConsumerID string `query:"consumer_id" json:"consumer_id" validate:"omitempty,hex32"`
	CompanyID  string `query:"company_id" json:"company_id" validate:"omitempty,hex32"`
}

// ListCompleted lists COMPLETED projects, newest completion first.
func (h *ProjectHandler) ListCompleted(c echo.Context) error {
	var req completedProjectsReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	list, err := h.uc.ListCompleted(c.Request().Context(), domain.Filter{
		ConsumerID: req.ConsumerID,
		CompanyID:  req.CompanyID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"projects": list})
}

type completeStepReq struct {
	StepType string `json:"step_type" validate:"required,steptype"`
}

// CompleteStep is issued by the company installing the project.
func (h *ProjectHandler) CompleteStep(c echo.Context) error {
	pid, ok, err := pathID(c, "project_id")
	if !ok {
		return err
	}
	companyID, ok, err := actorID(c)
	if !ok {
		return err
	}
	req := completeStepReq{StepType: c.Param("step_type")}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CompleteStep(c.Request().Context(), pid, companyID, domain.StepType(req.StepType))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
