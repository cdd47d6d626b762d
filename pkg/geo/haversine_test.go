package geo

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestDistanceKm_CoincidentPoints(t *testing.T) {
	km, ok := DistanceKm(ptr(10.0), ptr(20.0), ptr(10.0), ptr(20.0))
	if !ok {
		t.Fatal("expected known distance for coincident points")
	}
	if km != 0 {
		t.Errorf("expected distance 0 for coincident points, got %f", km)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	lat1, lon1 := ptr(48.8566), ptr(2.3522)
	lat2, lon2 := ptr(51.5074), ptr(-0.1278)

	d1, ok1 := DistanceKm(lat1, lon1, lat2, lon2)
	d2, ok2 := DistanceKm(lat2, lon2, lat1, lon1)

	if !ok1 || !ok2 {
		t.Fatal("expected known distances")
	}
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Paris to London, roughly 344 km.
	km, ok := DistanceKm(ptr(48.8566), ptr(2.3522), ptr(51.5074), ptr(-0.1278))
	if !ok {
		t.Fatal("expected known distance")
	}
	if km < 330 || km > 360 {
		t.Errorf("Paris-London distance out of range: %f", km)
	}
}

func TestDistanceKm_Antipodal(t *testing.T) {
	km, ok := DistanceKm(ptr(0.0), ptr(0.0), ptr(0.0), ptr(180.0))
	if !ok {
		t.Fatal("expected known distance")
	}
	half := math.Pi * EarthRadiusKm
	if math.Abs(km-half) > 1.0 {
		t.Errorf("antipodal distance expected ~%f, got %f", half, km)
	}
}

func TestDistanceKm_UnknownWhenCoordinateMissing(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 *float64
	}{
		{"missing lat1", nil, ptr(1), ptr(2), ptr(3)},
		{"missing lon1", ptr(1), nil, ptr(2), ptr(3)},
		{"missing lat2", ptr(1), ptr(2), nil, ptr(3)},
		{"missing lon2", ptr(1), ptr(2), ptr(3), nil},
		{"all missing", nil, nil, nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := DistanceKm(tc.lat1, tc.lon1, tc.lat2, tc.lon2); ok {
				t.Error("expected unknown distance")
			}
		})
	}
}
