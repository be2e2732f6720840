package http

import (
	"net/http"
	"strings"

	"greenmarket-backend/pkg/id"

	"github.com/labstack/echo/v4"
)

const HeaderActorID = "X-Actor-Id"

// actorID reads the acting party from the request header.
// On a missing or malformed header it writes the 400 itself and returns ok=false.
func actorID(c echo.Context) (string, bool, error) {
	a := strings.TrimSpace(c.Request().Header.Get(HeaderActorID))
	if !id.IsID32(a) {
		return "", false, c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing or invalid actor",
			Details: []FieldError{{Field: HeaderActorID, Message: "must be 32-char lowercase hex"}},
		})
	}
	return a, true, nil
}

// pathID validates a 32-hex path parameter.
func pathID(c echo.Context, name string) (string, bool, error) {
	v := c.Param(name)
	if !id.IsID32(v) {
		return "", false, c.JSON(http.StatusNotFound, ErrorResponse{Error: name + " not found"})
	}
	return v, true, nil
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
