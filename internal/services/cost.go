package services

import (
	"fmt"

	"shopping-route-service/internal/domain"
)

// CostModel merges a route's travel metrics with its optimized basket into
// one comparable total: totalCost = travelCost + basketCost, where
// travelCost monetizes minutes at the shopper's hourly rate.
//
// Routes with unmet items stay scored and returned; completeness is a
// ranking concern (unmet count), never a reason to discard a route.
type CostModel struct {
	HourlyRate float64
}

// TravelCost converts round-trip minutes into dollars.
func (m CostModel) TravelCost(minutes float64) float64 {
	return minutes / 60 * m.HourlyRate
}

// EvaluateRoute computes the full RouteOption for one candidate route.
func (m CostModel) EvaluateRoute(
	graph *ShoppingGraph,
	route domain.Route,
	items []string,
	matrix *domain.PriceMatrix,
) (domain.RouteOption, error) {
	minutes, err := graph.RouteMinutes(route)
	if err != nil {
		return domain.RouteOption{}, fmt.Errorf("evaluate route %q: %w", route.Signature(), err)
	}

	travelCost := m.TravelCost(minutes)
	basket := OptimizeBasket(route.Stores, items, matrix)

	return domain.RouteOption{
		Route:             route,
		TravelTimeMinutes: minutes,
		TravelCost:        travelCost,
		Assignments:       basket.Assignments,
		BasketCost:        basket.BasketCost,
		UnmetItems:        basket.UnmetItems,
		TotalCost:         travelCost + basket.BasketCost,
	}, nil
}

// CompareRouteOptions orders candidates ascending by total cost, then by
// unmet count (prefer completeness when totals tie), then by route
// signature as the stable final tie-break.
func CompareRouteOptions(a, b domain.RouteOption) int {
	if a.TotalCost < b.TotalCost {
		return -1
	}
	if a.TotalCost > b.TotalCost {
		return 1
	}
	if a.UnmetCount() != b.UnmetCount() {
		return a.UnmetCount() - b.UnmetCount()
	}
	sa, sb := a.Route.Signature(), b.Route.Signature()
	if sa < sb {
		return -1
	}
	if sa > sb {
		return 1
	}
	return 0
}
