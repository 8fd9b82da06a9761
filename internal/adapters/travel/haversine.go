package travel

import (
	"context"
	"fmt"

	"shopping-route-service/internal/domain"
)

// DefaultAverageSpeedKmh approximates urban driving speed for offline
// travel-time estimates.
const DefaultAverageSpeedKmh = 40.0

// HaversineProvider estimates travel time from great-circle distance at a
// fixed average speed. It is the default provider when no live routing
// service is configured; pure and safe for concurrent use.
type HaversineProvider struct {
	AverageSpeedKmh float64
}

func NewHaversineProvider(averageSpeedKmh float64) (*HaversineProvider, error) {
	if averageSpeedKmh <= 0 {
		return nil, &domain.ConfigurationError{Field: "average_speed_kmh", Reason: "must be positive"}
	}
	return &HaversineProvider{AverageSpeedKmh: averageSpeedKmh}, nil
}

func (p *HaversineProvider) TravelTimeMinutes(
	ctx context.Context,
	origin, destination domain.Coordinate,
) (float64, error) {
	if err := origin.Validate(); err != nil {
		return 0, fmt.Errorf("haversine travel time: origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return 0, fmt.Errorf("haversine travel time: destination: %w", err)
	}

	return domain.TravelTimeMinutes(origin.DistanceKm(destination), p.AverageSpeedKmh), nil
}
