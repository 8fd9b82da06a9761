package services

import (
	"fmt"
	"slices"

	"shopping-route-service/internal/domain"
)

// EnumerateRoutes generates every candidate route visiting between 1 and
// maxStops stores. For each store subset, all visit orderings are measured
// against the graph and only the cheapest-by-travel-time ordering is kept:
// orderings share a store set and therefore a basket, so only travel time
// distinguishes them.
//
// Ordering count per subset is factorial in subset size. That is inherent
// to exhaustive enumeration; callers bound maxStops (default 2) rather
// than this function guessing a cutoff.
//
// Output order is deterministic: subsets are generated over stores sorted
// by identifier, smaller subsets first.
func EnumerateRoutes(graph *ShoppingGraph, maxStops int) ([]domain.Route, error) {
	if maxStops < 1 {
		return nil, &domain.ConfigurationError{Field: "max_route_stores", Reason: "must be positive"}
	}

	stores := slices.Clone(graph.Stores())
	slices.SortFunc(stores, func(a, b domain.Store) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	if maxStops > len(stores) {
		maxStops = len(stores)
	}

	var routes []domain.Route
	for size := 1; size <= maxStops; size++ {
		subset := make([]domain.Store, 0, size)
		if err := forEachSubset(stores, 0, size, subset, func(sub []domain.Store) error {
			route, err := cheapestOrdering(graph, sub)
			if err != nil {
				return err
			}
			routes = append(routes, route)
			return nil
		}); err != nil {
			return nil, fmt.Errorf("enumerate routes: %w", err)
		}
	}

	return routes, nil
}

// forEachSubset visits every size-length combination of stores[start:].
func forEachSubset(stores []domain.Store, start, size int, acc []domain.Store, visit func([]domain.Store) error) error {
	if size == 0 {
		return visit(acc)
	}
	for i := start; i <= len(stores)-size; i++ {
		if err := forEachSubset(stores, i+1, size-1, append(acc, stores[i]), visit); err != nil {
			return err
		}
	}
	return nil
}

// cheapestOrdering tries every permutation of the subset and returns the
// one with minimum round-trip travel time. Equal-time orderings resolve to
// the first permutation in generation order, keeping results reproducible.
func cheapestOrdering(graph *ShoppingGraph, subset []domain.Store) (domain.Route, error) {
	var best domain.Route
	bestMinutes := -1.0

	if err := forEachPermutation(subset, func(order []domain.Store) error {
		route := domain.Route{Stores: slices.Clone(order)}
		minutes, err := graph.RouteMinutes(route)
		if err != nil {
			return err
		}
		if bestMinutes < 0 || minutes < bestMinutes {
			best = route
			bestMinutes = minutes
		}
		return nil
	}); err != nil {
		return domain.Route{}, err
	}

	return best, nil
}

func forEachPermutation(stores []domain.Store, visit func([]domain.Store) error) error {
	if len(stores) <= 1 {
		return visit(stores)
	}

	var recurse func(k int) error
	recurse = func(k int) error {
		if k == len(stores) {
			return visit(stores)
		}
		for i := k; i < len(stores); i++ {
			stores[k], stores[i] = stores[i], stores[k]
			if err := recurse(k + 1); err != nil {
				return err
			}
			stores[k], stores[i] = stores[i], stores[k]
		}
		return nil
	}

	return recurse(0)
}
