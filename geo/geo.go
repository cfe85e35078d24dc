// Package geo holds the small amount of spherical and planar geometry
// the track engine needs: great-circle distance and bearing between
// fixes, and point-in-polygon tests for regional track selection.
//
// Coordinates are decimal degrees with west longitude negative, the
// convention the deck parser emits.
package geo

import "math"

const (
	earthRadiusKM     = 6371.0
	kmPerNauticalMile = 1.852
	degreesPerRadian  = 180 / math.Pi
	radiansPerDegree  = math.Pi / 180
)

// Distance returns the great-circle distance in nautical miles between
// two fixes, by the haversine formula on a spherical Earth.
func Distance(lon1, lat1, lon2, lat2 float64) float64 {
	phi1 := lat1 * radiansPerDegree
	phi2 := lat2 * radiansPerDegree
	dPhi := (lat2 - lat1) * radiansPerDegree
	dLambda := (lon2 - lon1) * radiansPerDegree

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c / kmPerNauticalMile
}

// Bearing returns the initial great-circle bearing in degrees from the
// first fix to the second, normalized to [0, 360) with 0 at true north
// and 90 at east.
func Bearing(lon1, lat1, lon2, lat2 float64) float64 {
	phi1 := lat1 * radiansPerDegree
	phi2 := lat2 * radiansPerDegree
	dLambda := (lon2 - lon1) * radiansPerDegree

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)

	theta := math.Atan2(y, x) * degreesPerRadian
	return math.Mod(theta+360, 360)
}
