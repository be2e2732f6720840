package http

import (
	"net/http"

	"greenmarket-backend/internal/usecase/estimation"

	"github.com/labstack/echo/v4"
)

type EstimationHandler struct{ uc *estimation.Usecase }

func NewEstimationHandler(uc *estimation.Usecase) *EstimationHandler {
	return &EstimationHandler{uc: uc}
}

type estimateReq struct {
	RoofArea           float64      `json:"roof_area" validate:"gte=0"`
	RoofPolygon        [][2]float64 `json:"roof_polygon"`
	PanelCount         int          `json:"panel_count" validate:"gte=0"`
	AvgElectricityBill float64      `json:"avg_electricity_bill" validate:"required,gt=0,dec2"`
	ElectricityRate    float64      `json:"electricity_rate" validate:"gte=0"`
}

// Estimate is public; no actor is required.
func (h *EstimationHandler) Estimate(c echo.Context) error {
	var req estimateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Estimate(estimation.EstimateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	params := h.uc.Params()
	if req.ElectricityRate > 0 {
		params.ElectricityRate = req.ElectricityRate
	}
	return c.JSON(http.StatusOK, map[string]any{
		"result": res,
		"params": params,
	})
}
