package domain

import "math"

const earthRadiusKm = 6371.0

// Coordinate is a WGS84 position. Either component may be absent — an unknown
// position must propagate as unknown, never as 0.
type Coordinate struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Lat: &lat, Lng: &lng}
}

func (c Coordinate) Known() bool {
	return c.Lat != nil && c.Lng != nil
}

func (c Coordinate) Valid() bool {
	if !c.Known() {
		return false
	}
	return *c.Lat >= -90 && *c.Lat <= 90 && *c.Lng >= -180 && *c.Lng <= 180
}

// DistanceKm returns the great-circle distance between a and b using the
// haversine formula. ok is false when either coordinate is incomplete:
// the distance is undefined, not zero and not infinity.
func DistanceKm(a, b Coordinate) (float64, bool) {
	if !a.Known() || !b.Known() {
		return 0, false
	}

	dLat := deg2rad(*b.Lat - *a.Lat)
	dLng := deg2rad(*b.Lng - *a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(*a.Lat))*math.Cos(deg2rad(*b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, true
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
