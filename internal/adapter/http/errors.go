package http

import (
	"errors"
	"log"
	"net/http"

	estimationDomain "greenmarket-backend/internal/domain/estimation"
	maintenanceDomain "greenmarket-backend/internal/domain/maintenance"
	projectDomain "greenmarket-backend/internal/domain/project"
	quotationDomain "greenmarket-backend/internal/domain/quotation"
	estimationUC "greenmarket-backend/internal/usecase/estimation"
	quotationUC "greenmarket-backend/internal/usecase/quotation"

	"github.com/labstack/echo/v4"
)

var statusByErr = []struct {
	err    error
	status int
}{
	// 404
	{quotationDomain.ErrNotFound, http.StatusNotFound},
	{quotationDomain.ErrVersionNotFound, http.StatusNotFound},
	{projectDomain.ErrNotFound, http.StatusNotFound},
	{maintenanceDomain.ErrNotFound, http.StatusNotFound},

	// 403
	{quotationDomain.ErrNotOwner, http.StatusForbidden},
	{maintenanceDomain.ErrNotOwner, http.StatusForbidden},
	{maintenanceDomain.ErrNotParty, http.StatusForbidden},
	{projectDomain.ErrNotOwner, http.StatusForbidden},

	// 409: the record is not in a state that allows the action
	{quotationDomain.ErrQuotationClosed, http.StatusConflict},
	{quotationDomain.ErrDraftExists, http.StatusConflict},
	{quotationDomain.ErrVersionNotEditable, http.StatusConflict},
	{quotationDomain.ErrNotSubmitted, http.StatusConflict},
	{quotationDomain.ErrNotLatestVersion, http.StatusConflict},
	{quotationDomain.ErrAlreadyFinalized, http.StatusConflict},
	{projectDomain.ErrStepOutOfOrder, http.StatusConflict},
	{projectDomain.ErrStepAlreadyCompleted, http.StatusConflict},
	{projectDomain.ErrNotFullyConfigured, http.StatusConflict},
	{projectDomain.ErrAlreadyCompleted, http.StatusConflict},
	{maintenanceDomain.ErrProjectNotCompleted, http.StatusConflict},
	{maintenanceDomain.ErrMaintenancePending, http.StatusConflict},
	{maintenanceDomain.ErrInvalidTransition, http.StatusConflict},

	// 422
	{quotationUC.ErrInvalidInput, http.StatusUnprocessableEntity},
	{estimationUC.ErrInvalidPolygon, http.StatusUnprocessableEntity},
	{projectDomain.ErrUnknownStep, http.StatusUnprocessableEntity},
	{maintenanceDomain.ErrDateNotInFuture, http.StatusUnprocessableEntity},
	{maintenanceDomain.ErrReasonRequired, http.StatusUnprocessableEntity},
}

// writeError maps usecase/domain errors onto a status and ErrorResponse.
// Anything unrecognised is logged and reported as 500 without its message.
func writeError(c echo.Context, err error) error {
	var ve *quotationDomain.ValidationError
	if errors.As(err, &ve) {
		details := make([]FieldError, 0, len(ve.Problems))
		for _, p := range ve.Problems {
			details = append(details, FieldError{Field: p.Field, Message: p.Message})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ve.Unwrap().Error(), Details: details})
	}
	if estimationDomain.IsValidation(err) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	for _, m := range statusByErr {
		if errors.Is(err, m.err) {
			return c.JSON(m.status, ErrorResponse{Error: err.Error()})
		}
	}
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// bindAndValidate writes the 400/422 response itself and reports false on failure.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
