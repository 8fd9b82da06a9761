package ports

import (
	"context"
	"shopping-route-service/internal/domain"
)

// Port: a boundary for materializing the price/availability table.
// Implementations hand back an already unit-normalized matrix; the solver
// never judges freshness or trustworthiness of the prices it is given.
type PriceSource interface {
	// Return price/availability entries for the given items at the given stores.
	FetchPrices(ctx context.Context, items []string, stores []domain.Store) (*domain.PriceMatrix, error)
}
