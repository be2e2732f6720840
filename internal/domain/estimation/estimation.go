package estimation

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Defaults used by the consumer-facing calculator (Malaysian tariff, RM/kWh).
const (
	DefaultPanelSize        = 1.7 // m² per panel
	DefaultPanelWattage     = 300.0
	DefaultSunHours         = 5.0
	DefaultPerformanceRatio = 0.75
	DefaultElectricityRate  = 0.52

	daysPerMonth  = 30
	monthsPerYear = 12
)

var (
	ErrInvalidBill       = errors.New("average electricity bill must be greater than zero")
	ErrInvalidPanelCount = errors.New("panel count must be between 1 and 2147483647")
	ErrInvalidRoofArea   = errors.New("roof area must be a positive number within range")
	ErrRoofTooSmall      = errors.New("roof area is too small for a single panel")
	ErrMissingSize       = errors.New("either roof area or panel count is required")
	ErrAmbiguousSize     = errors.New("provide either roof area or panel count, not both")
	ErrInvalidParams     = errors.New("invalid estimation parameters")
)

// MaxPanels caps every panel count so results fit an int on any platform.
const MaxPanels = math.MaxInt32

var (
	maxPanels = decimal.NewFromInt(MaxPanels)
	thousand  = decimal.NewFromInt(1000)
	hundred   = decimal.NewFromInt(100)
	days      = decimal.NewFromInt(daysPerMonth)
	months    = decimal.NewFromInt(monthsPerYear)
)

// Params are the physical and tariff assumptions behind an estimate.
type Params struct {
	PanelSize        float64 `json:"panel_size"`
	PanelWattage     float64 `json:"panel_wattage"`
	SunHours         float64 `json:"sun_hours"`
	PerformanceRatio float64 `json:"performance_ratio"`
	ElectricityRate  float64 `json:"electricity_rate"`
}

func DefaultParams() Params {
	return Params{
		PanelSize:        DefaultPanelSize,
		PanelWattage:     DefaultPanelWattage,
		SunHours:         DefaultSunHours,
		PerformanceRatio: DefaultPerformanceRatio,
		ElectricityRate:  DefaultElectricityRate,
	}
}

func (p Params) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"panel_size", p.PanelSize},
		{"panel_wattage", p.PanelWattage},
		{"sun_hours", p.SunHours},
		{"performance_ratio", p.PerformanceRatio},
		{"electricity_rate", p.ElectricityRate},
	}
	for _, c := range checks {
		if !finite(c.v) || c.v <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", ErrInvalidParams, c.name)
		}
	}
	if p.PerformanceRatio > 1 {
		return fmt.Errorf("%w: performance_ratio must not exceed 1", ErrInvalidParams)
	}
	return nil
}

// Result is the savings projection shown to the consumer. Money is formatted
// with 2 decimals, kWp with 1.
type Result struct {
	OldBill                 string `json:"old_bill"`
	NewBill                 string `json:"new_bill"`
	MonthlySavings          string `json:"monthly_savings"`
	MonthlyProductionKWh    string `json:"monthly_production_kwh"`
	RecommendedKWp          string `json:"recommended_kwp"`
	PanelsForRecommendedKWp int    `json:"panels_for_recommended_kwp"`
	CoversFullBill          bool   `json:"covers_full_bill"`
	MaxPanelCount           int    `json:"max_panel_count"`
	AnnualSavings           string `json:"annual_savings"`
	PercentageSaved         string `json:"percentage_saved"`
}

// CalculatePanels returns how many whole panels fit on area m². A roof smaller
// than one panel yields 0, which is not an error; so does a roof that would
// need more than MaxPanels.
func CalculatePanels(area, panelSize float64) int {
	if !finite(area) || !finite(panelSize) || area <= 0 || panelSize <= 0 {
		return 0
	}
	return boundedInt(decimal.NewFromFloat(area).Div(decimal.NewFromFloat(panelSize)).Floor())
}

// CalculatePanelsForKWp rounds up: partial panels cannot be installed.
// It returns 0 when the answer exceeds MaxPanels.
func CalculatePanelsForKWp(kWp, panelWattage float64) int {
	if !finite(kWp) || !finite(panelWattage) || kWp <= 0 || panelWattage <= 0 {
		return 0
	}
	return panelsForKWp(decimal.NewFromFloat(kWp), decimal.NewFromFloat(panelWattage))
}

func panelsForKWp(kWp, wattage decimal.Decimal) int {
	if !kWp.IsPositive() || !wattage.IsPositive() {
		return 0
	}
	return boundedInt(kWp.Mul(thousand).Div(wattage).Ceil())
}

func boundedInt(n decimal.Decimal) int {
	if n.IsNegative() || n.GreaterThan(maxPanels) {
		return 0
	}
	return int(n.IntPart())
}

// CalculateSavings projects bill savings for panelCount panels against an
// average monthly bill.
func CalculateSavings(avgBill float64, panelCount int, p Params) (Result, error) {
	if !finite(avgBill) || avgBill <= 0 {
		return Result{}, ErrInvalidBill
	}
	if panelCount <= 0 || panelCount > MaxPanels {
		return Result{}, ErrInvalidPanelCount
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	bill := decimal.NewFromFloat(avgBill)
	panels := decimal.NewFromInt(int64(panelCount))
	wattage := decimal.NewFromFloat(p.PanelWattage)
	panelKW := wattage.Div(thousand)
	sun := decimal.NewFromFloat(p.SunHours)
	ratio := decimal.NewFromFloat(p.PerformanceRatio)
	rate := decimal.NewFromFloat(p.ElectricityRate)

	energyPerPanelPerDay := panelKW.Mul(sun).Mul(ratio)
	monthlyProduction := energyPerPanelPerDay.Mul(panels).Mul(days)
	savings := monthlyProduction.Mul(rate)

	newBill := decimal.Max(decimal.Zero, bill.Sub(savings))
	annualBill := bill.Mul(months)
	annualSavings := decimal.Min(savings.Mul(months), annualBill)

	// Size to whichever is smaller: what fits, or what zeroes the bill.
	fitKWp := panels.Mul(panelKW)
	neededKWp := bill.Div(rate.Mul(days).Mul(sun).Mul(ratio))
	recommended := decimal.Min(fitKWp, neededKWp)

	percentage := decimal.Min(hundred, annualSavings.Div(annualBill).Mul(hundred).Round(2))

	return Result{
		OldBill:                 bill.StringFixed(2),
		NewBill:                 newBill.StringFixed(2),
		MonthlySavings:          savings.StringFixed(2),
		MonthlyProductionKWh:    monthlyProduction.StringFixed(2),
		RecommendedKWp:          recommended.StringFixed(1),
		PanelsForRecommendedKWp: panelsForKWp(recommended, wattage),
		CoversFullBill:          savings.GreaterThanOrEqual(bill),
		MaxPanelCount:           panelCount,
		AnnualSavings:           annualSavings.StringFixed(2),
		PercentageSaved:         percentage.StringFixed(2),
	}, nil
}

// Input is one consumer request: a roof area or a panel count, plus the bill.
type Input struct {
	RoofArea           float64
	PanelCount         int
	AvgElectricityBill float64
}

// Estimate resolves the panel count from the roof (when given) and projects savings.
func Estimate(in Input, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if !finite(in.RoofArea) || in.RoofArea < 0 {
		return Result{}, ErrInvalidRoofArea
	}
	if in.PanelCount < 0 || in.PanelCount > MaxPanels {
		return Result{}, ErrInvalidPanelCount
	}

	switch {
	case in.RoofArea > 0 && in.PanelCount > 0:
		return Result{}, ErrAmbiguousSize
	case in.RoofArea == 0 && in.PanelCount == 0:
		return Result{}, ErrMissingSize
	}

	panels := in.PanelCount
	if in.RoofArea > 0 {
		panels = CalculatePanels(in.RoofArea, p.PanelSize)
		switch {
		case panels == 0 && in.RoofArea < p.PanelSize:
			return Result{}, ErrRoofTooSmall
		case panels == 0:
			return Result{}, ErrInvalidRoofArea
		}
	}
	return CalculateSavings(in.AvgElectricityBill, panels, p)
}

// IsValidation reports whether err is caused by caller input rather than a fault.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidBill, ErrInvalidPanelCount, ErrInvalidRoofArea, ErrRoofTooSmall,
		ErrMissingSize, ErrAmbiguousSize, ErrInvalidParams,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
