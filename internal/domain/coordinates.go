package domain

import "math"

// Earth mean radius in kilometers, used for great-circle distance.
const earthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude in degrees).
type Coordinate struct {
	Lat float64
	Lon float64
}

// Validate rejects NaN and out-of-range coordinates.
// Distances computed from bad coordinates are silently wrong, so callers
// fail fast on this before building a graph.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return &ConfigurationError{Field: "coordinate", Reason: "latitude/longitude must not be NaN"}
	}
	if c.Lat < -90 || c.Lat > 90 {
		return &ConfigurationError{Field: "coordinate", Reason: "latitude must be within [-90, 90]"}
	}
	if c.Lon < -180 || c.Lon > 180 {
		return &ConfigurationError{Field: "coordinate", Reason: "longitude must be within [-180, 180]"}
	}
	return nil
}

// DistanceKm returns the great-circle (haversine) distance to other in
// kilometers. Symmetric, and zero for identical coordinates.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	lat1 := c.Lat * math.Pi / 180
	lon1 := c.Lon * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	lon2 := other.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

// TravelTimeMinutes converts a distance into driving minutes at a fixed
// average speed. Used when no live routing provider is configured.
func TravelTimeMinutes(distanceKm, averageSpeedKmh float64) float64 {
	return distanceKm / averageSpeedKmh * 60
}
