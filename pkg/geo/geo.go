// Package geo provides the spherical-Earth distance math used by the
// treasure search.
package geo

import "math"

// EarthRadiusMeters is the spherical approximation used for all
// great-circle calculations.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between two
// coordinate pairs, computed with the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox is a latitude/longitude rectangle guaranteed to contain
// every point within some radius of its center. It is a coarse prefilter;
// callers still apply the exact Distance predicate.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox returns the smallest safe box around (lat, lng) for the
// given radius. Longitude degrees shrink toward the poles, so the
// longitude span is sized for the worst latitude inside the box; when the
// box touches a pole or crosses the antimeridian it widens to the full
// longitude range rather than excluding qualifying points.
func NewBoundingBox(lat, lng, radiusMeters float64) BoundingBox {
	latDelta := degrees(radiusMeters / EarthRadiusMeters)

	box := BoundingBox{
		MinLat: math.Max(lat-latDelta, -90),
		MaxLat: math.Min(lat+latDelta, 90),
	}

	maxAbsLat := math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))
	cosLat := math.Cos(radians(maxAbsLat))
	if cosLat*EarthRadiusMeters <= radiusMeters {
		box.MinLng, box.MaxLng = -180, 180
		return box
	}

	lngDelta := degrees(radiusMeters / (EarthRadiusMeters * cosLat))
	box.MinLng = lng - lngDelta
	box.MaxLng = lng + lngDelta
	if box.MinLng < -180 || box.MaxLng > 180 {
		box.MinLng, box.MaxLng = -180, 180
	}

	return box
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
