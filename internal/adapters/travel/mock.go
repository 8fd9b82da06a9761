package travel

import (
	"context"
	"fmt"

	"shopping-route-service/internal/domain"
)

type MockLeg struct {
	From, To domain.Coordinate
	Minutes  float64
}

// MockProvider serves fixed travel times for known coordinate pairs.
type MockProvider struct {
	m map[string]float64
}

func NewMockProvider(legs []MockLeg) *MockProvider {
	m := make(map[string]float64, len(legs))
	for _, l := range legs {
		m[legKey(l.From, l.To)] = l.Minutes
	}
	return &MockProvider{m: m}
}

func (p *MockProvider) TravelTimeMinutes(ctx context.Context, origin, destination domain.Coordinate) (float64, error) {
	minutes, ok := p.m[legKey(origin, destination)]
	if !ok {
		return 0, fmt.Errorf("missing leg %v -> %v", origin, destination)
	}
	return minutes, nil
}

func legKey(a, b domain.Coordinate) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", a.Lat, a.Lon, b.Lat, b.Lon)
}
