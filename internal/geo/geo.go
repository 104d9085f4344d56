// Package geo implements the great-circle math behind the nearby-products
// query. The repository prefilters with a bounding box in SQL and confirms
// candidates with DistanceMeters.
package geo

import "math"

const earthRadiusM = 6371000.0

// DistanceMeters returns the haversine distance between two points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadiusM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// BoundingBox returns a box guaranteed to contain the circle of the given
// radius around the center. Near the poles the longitude span degenerates, so
// it widens to the full range there.
func BoundingBox(lat, lon, radiusM float64) Bounds {
	dLat := radiusM / earthRadiusM * 180 / math.Pi

	cos := math.Cos(lat * math.Pi / 180)
	var dLon float64
	if cos < 1e-9 {
		dLon = 180
	} else {
		dLon = dLat / cos
	}

	return Bounds{
		MinLat: math.Max(lat-dLat, -90),
		MaxLat: math.Min(lat+dLat, 90),
		MinLon: math.Max(lon-dLon, -180),
		MaxLon: math.Min(lon+dLon, 180),
	}
}
