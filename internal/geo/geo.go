package geo

import "math"

const earthRadiusKm = 6371.0

// Plausible bounding region for branch/user coordinates. Geocoding
// occasionally returns (0,0) or wildly wrong points; anything outside this
// box is treated as "no coordinate" rather than a real location.
const (
	minLatitude  = -60.0
	maxLatitude  = 75.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether c can be used for distance computation.
// (0,0) is rejected: upstream geocoders emit it as a null-island default.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	if math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}
	if c.Latitude == 0 && c.Longitude == 0 {
		return false
	}
	return c.Latitude >= minLatitude && c.Latitude <= maxLatitude &&
		c.Longitude >= minLongitude && c.Longitude <= maxLongitude
}

// DistanceKm computes the great-circle distance between a and b using the
// haversine formula, rounded to 2 decimal places.
func DistanceKm(a, b Coordinate) float64 {
	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	deltaLat := degreesToRadians(b.Latitude - a.Latitude)
	deltaLon := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*100) / 100
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
