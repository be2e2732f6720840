package estimation

// EstimateInput sizes the system from exactly one of RoofArea, RoofPolygon or
// PanelCount. RoofPolygon points are [longitude, latitude] pairs.
type EstimateInput struct {
	RoofArea           float64      `json:"roof_area"`
	RoofPolygon        [][2]float64 `json:"roof_polygon"`
	PanelCount         int          `json:"panel_count"`
	AvgElectricityBill float64      `json:"avg_electricity_bill"`
	// optional tariff override; zero keeps the configured rate
	ElectricityRate    float64      `json:"electricity_rate"`
}
