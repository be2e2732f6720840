package estimation

import (
	"errors"
	"math"
	"testing"

	domain "greenmarket-backend/internal/domain/estimation"
)

func newUsecase(t *testing.T) *Usecase {
	t.Helper()
	uc, err := NewUsecase(domain.DefaultParams())
	if err != nil {
		t.Fatalf("NewUsecase: %v", err)
	}
	return uc
}

func TestNewUsecase_InvalidParams(t *testing.T) {
	p := domain.DefaultParams()
	p.SunHours = 0
	if _, err := NewUsecase(p); err == nil {
		t.Fatal("expected error for zero sun hours")
	}
}

func TestEstimate_PanelCount(t *testing.T) {
	res, err := newUsecase(t).Estimate(EstimateInput{PanelCount: 10, AvgElectricityBill: 200})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if res.NewBill != "24.50" || res.MaxPanelCount != 10 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestEstimate_RateOverride(t *testing.T) {
	uc := newUsecase(t)
	base, _ := uc.Estimate(EstimateInput{PanelCount: 10, AvgElectricityBill: 200})
	cheaper, err := uc.Estimate(EstimateInput{PanelCount: 10, AvgElectricityBill: 200, ElectricityRate: 0.26})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if base.MonthlySavings == cheaper.MonthlySavings {
		t.Fatalf("rate override ignored: %s", cheaper.MonthlySavings)
	}
	if uc.Params().ElectricityRate != domain.DefaultElectricityRate {
		t.Fatal("override leaked into configured params")
	}
}

// ~0.0001 degree square at the equator, roughly 11.1m x 11.1m
var square = [][2]float64{{0, 0}, {0.0001, 0}, {0.0001, 0.0001}, {0, 0.0001}}

func TestPolygonArea(t *testing.T) {
	a, err := PolygonArea(square)
	if err != nil {
		t.Fatalf("PolygonArea: %v", err)
	}
	if a < 115 || a > 130 {
		t.Fatalf("area = %.2f, want about 123", a)
	}

	closed := append(append([][2]float64{}, square...), square[0])
	b, err := PolygonArea(closed)
	if err != nil || math.Abs(a-b) > 1e-6 {
		t.Fatalf("closed ring area = %.4f (%v), want %.4f", b, err, a)
	}
}

func TestPolygonArea_Invalid(t *testing.T) {
	tests := [][][2]float64{
		nil,
		{{0, 0}, {1, 1}},
		{{0, 0}, {1, 1}, {0, 0}},
		{{0, 0}, {200, 0}, {0, 1}},
		{{0, 0}, {0, 0}, {0, 0}},
	}
	for i, pts := range tests {
		if _, err := PolygonArea(pts); !errors.Is(err, ErrInvalidPolygon) {
			t.Errorf("case %d: err = %v, want ErrInvalidPolygon", i, err)
		}
	}
}

func TestEstimate_FromPolygon(t *testing.T) {
	res, err := newUsecase(t).Estimate(EstimateInput{RoofPolygon: square, AvgElectricityBill: 200})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if res.MaxPanelCount < 65 || res.MaxPanelCount > 80 {
		t.Fatalf("panel count = %d, want about 72", res.MaxPanelCount)
	}
	if !res.CoversFullBill {
		t.Fatalf("72 panels should cover a 200 bill: %+v", res)
	}
}

func TestEstimate_InputErrors(t *testing.T) {
	uc := newUsecase(t)
	tests := []struct {
		name string
		in   EstimateInput
		want error
	}{
		{"polygon and area", EstimateInput{RoofArea: 10, RoofPolygon: square, AvgElectricityBill: 100}, domain.ErrAmbiguousSize},
		{"nothing", EstimateInput{AvgElectricityBill: 100}, domain.ErrMissingSize},
		{"bad polygon", EstimateInput{RoofPolygon: [][2]float64{{0, 0}}, AvgElectricityBill: 100}, ErrInvalidPolygon},
		{"negative rate", EstimateInput{PanelCount: 3, AvgElectricityBill: 100, ElectricityRate: -1}, domain.ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Estimate(tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
