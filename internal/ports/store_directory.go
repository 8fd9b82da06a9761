package ports

import (
	"context"
	"shopping-route-service/internal/domain"
)

// Port: a boundary for retrieving candidate stores from a data source.
type StoreDirectory interface {
	// Retrieve all stores available for route planning.
	ListStores(ctx context.Context) ([]domain.Store, error)
}
