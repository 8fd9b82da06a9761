package ports

import (
	"context"
	"shopping-route-service/internal/domain"
)

// Contract for estimating driving time between two coordinates.
// The offline implementation derives time from haversine distance; a live
// routing provider may be swapped in behind the same interface.
type TravelTimeProvider interface {
	// Return estimated driving time in minutes from origin to destination.
	TravelTimeMinutes(ctx context.Context, origin, destination domain.Coordinate) (float64, error)
}
