package estimation

import (
	"errors"
	"math"

	domain "greenmarket-backend/internal/domain/estimation"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var ErrInvalidPolygon = errors.New("roof polygon needs at least 3 distinct [lon, lat] points")

type Usecase struct{ params domain.Params }

// NewUsecase fails when the configured defaults are not usable.
func NewUsecase(p domain.Params) (*Usecase, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Usecase{params: p}, nil
}

func (u *Usecase) Params() domain.Params { return u.params }

func (u *Usecase) Estimate(in EstimateInput) (*domain.Result, error) {
	p := u.params
	if in.ElectricityRate != 0 {
		p.ElectricityRate = in.ElectricityRate
	}

	area := in.RoofArea
	if len(in.RoofPolygon) > 0 {
		if area > 0 {
			return nil, domain.ErrAmbiguousSize
		}
		a, err := PolygonArea(in.RoofPolygon)
		if err != nil {
			return nil, err
		}
		area = a
	}

	res, err := domain.Estimate(domain.Input{
		RoofArea:           area,
		PanelCount:         in.PanelCount,
		AvgElectricityBill: in.AvgElectricityBill,
	}, p)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// PolygonArea returns the geodesic area in m² of a closed or open ring.
func PolygonArea(points [][2]float64) (float64, error) {
	ring := make(orb.Ring, 0, len(points)+1)
	for _, pt := range points {
		lon, lat := pt[0], pt[1]
		if math.IsNaN(lon) || math.IsNaN(lat) || lon < -180 || lon > 180 || lat < -90 || lat > 90 {
			return 0, ErrInvalidPolygon
		}
		ring = append(ring, orb.Point{lon, lat})
	}
	if len(ring) > 1 && ring[0].Equal(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return 0, ErrInvalidPolygon
	}
	ring = append(ring, ring[0])

	area := math.Abs(geo.Area(orb.Polygon{ring}))
	if area == 0 {
		return 0, ErrInvalidPolygon
	}
	return area, nil
}
