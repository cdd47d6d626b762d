// Package geo provides great-circle distance helpers for camp coordinates.
package geo

import "math"

// EarthRadiusKm is the Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance in kilometers between two
// points given in degrees. Workshop coordinates are nullable, so each
// value is a pointer; if any of the four is absent the distance is
// unknown and ok is false.
func DistanceKm(lat1, lon1, lat2, lon2 *float64) (km float64, ok bool) {
	if lat1 == nil || lon1 == nil || lat2 == nil || lon2 == nil {
		return 0, false
	}

	phi1 := radians(*lat1)
	phi2 := radians(*lat2)
	dPhi := radians(*lat2 - *lat1)
	dLambda := radians(*lon2 - *lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a))), true
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
