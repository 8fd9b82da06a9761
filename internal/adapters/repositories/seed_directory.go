package repositories

import (
	"context"
	"fmt"

	"shopping-route-service/internal/domain"
)

// SeedDirectory serves stores and prices straight from a seed JSON file.
// It implements both the StoreDirectory and PriceSource ports and backs
// local runs that have no database configured.
type SeedDirectory struct {
	stores []domain.Store
	seeds  []StoreSeed
}

func NewSeedDirectory(jsonPath string) (*SeedDirectory, error) {
	seeds, err := LoadSeedFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed directory: %w", err)
	}

	stores := make([]domain.Store, 0, len(seeds))
	for _, s := range seeds {
		stores = append(stores, domain.Store{
			ID:       s.StoreID,
			Name:     s.Name,
			Address:  s.Address,
			Location: domain.Coordinate{Lat: s.Latitude, Lon: s.Longitude},
		})
	}

	return &SeedDirectory{stores: stores, seeds: seeds}, nil
}

func (d *SeedDirectory) ListStores(ctx context.Context) ([]domain.Store, error) {
	out := make([]domain.Store, len(d.stores))
	copy(out, d.stores)
	return out, nil
}

func (d *SeedDirectory) FetchPrices(
	ctx context.Context,
	items []string,
	stores []domain.Store,
) (*domain.PriceMatrix, error) {
	requested := make(map[string]struct{}, len(items))
	for _, it := range items {
		requested[it] = struct{}{}
	}

	matrix := domain.NewPriceMatrix()
	for _, s := range d.seeds {
		for _, p := range s.Prices {
			if _, ok := requested[p.Ingredient]; !ok {
				continue
			}
			if p.InStock {
				matrix.SetPrice(p.Ingredient, s.StoreID, p.Price)
			} else {
				matrix.SetUnavailable(p.Ingredient, s.StoreID)
			}
		}
	}

	return matrix, nil
}
