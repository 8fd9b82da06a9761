package services

import "shopping-route-service/internal/domain"

// Optimized basket for one route: per-item store assignments, the summed
// price of met items, and the items no store in the route carries.
type Basket struct {
	Assignments []domain.ItemAssignment
	BasketCost  float64
	UnmetItems  []string
}

// OptimizeBasket assigns each item to the minimum-price store among the
// route's stores where the item is available. Items unavailable everywhere
// in the route are reported as unmet; they contribute nothing to the
// basket cost and are never silently dropped.
//
// Tie-break when two stores match on price: the lowest store identifier
// wins, so identical inputs always produce identical assignments.
func OptimizeBasket(stores []domain.Store, items []string, matrix *domain.PriceMatrix) Basket {
	basket := Basket{
		Assignments: make([]domain.ItemAssignment, 0, len(items)),
	}

	for _, item := range items {
		bestStoreID := ""
		bestPrice := 0.0
		found := false

		for _, store := range stores {
			entry, ok := matrix.Lookup(item, store.ID)
			if !ok || !entry.Available {
				continue
			}

			better := entry.Price < bestPrice ||
				(entry.Price == bestPrice && store.ID < bestStoreID)
			if !found || better {
				bestStoreID = store.ID
				bestPrice = entry.Price
				found = true
			}
		}

		if !found {
			basket.UnmetItems = append(basket.UnmetItems, item)
			continue
		}

		basket.Assignments = append(basket.Assignments, domain.ItemAssignment{
			Item:    item,
			StoreID: bestStoreID,
			Price:   bestPrice,
		})
		basket.BasketCost += bestPrice
	}

	return basket
}
