package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"shopping-route-service/internal/domain"
	"shopping-route-service/internal/platform/obs"
	"shopping-route-service/internal/ports"
)

// Solve finds the visitation route and per-item store assignment that
// minimize total cost = travel cost + basket cost.
//
// The computation is a pure function of its inputs: enumerate candidate
// routes, evaluate each one, rank ascending by total cost with unmet count
// and route signature as tie-breaks, and select the winner. Repeated calls
// with identical inputs return identical results.
//
// Input validation is eager: bad configuration, an empty store set or
// malformed price entries fail before any route is evaluated. An empty
// shopping list is degenerate but well-defined (zero basket cost, cheapest
// round trip wins); rejecting it is left to callers.
func Solve(
	list domain.ShoppingList,
	matrix *domain.PriceMatrix,
	graph *ShoppingGraph,
) (*domain.SolverResult, error) {
	if err := validateSolveInputs(list, matrix, graph); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	routes, err := EnumerateRoutes(graph, list.MaxStops())
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	items := list.ItemNames()
	model := CostModel{HourlyRate: list.HourlyRate}

	options := make([]domain.RouteOption, 0, len(routes))
	for _, route := range routes {
		option, err := model.EvaluateRoute(graph, route, items, matrix)
		if err != nil {
			return nil, fmt.Errorf("solve: %w", err)
		}
		options = append(options, option)
	}

	slices.SortStableFunc(options, CompareRouteOptions)

	result := &domain.SolverResult{
		Winner: options[0],
		Routes: options,
	}
	if len(options) > 1 {
		result.SavingsVsNext = options[1].TotalCost - options[0].TotalCost
	}

	return result, nil
}

func validateSolveInputs(list domain.ShoppingList, matrix *domain.PriceMatrix, graph *ShoppingGraph) error {
	if graph == nil || len(graph.Stores()) == 0 {
		return domain.ErrEmptyStoreSet
	}

	if err := list.Validate(); err != nil && !errors.Is(err, domain.ErrEmptyShoppingList) {
		return err
	}

	if err := matrix.Validate(); err != nil {
		return err
	}

	return nil
}

// PlanShoppingTrip is the collaborator-facing orchestrator: it pulls the
// store set from the directory, materializes the price matrix, builds the
// travel-time graph and runs the solver over the assembled inputs.
func PlanShoppingTrip(
	ctx context.Context,
	list domain.ShoppingList,
	directory ports.StoreDirectory,
	prices ports.PriceSource,
	travel ports.TravelTimeProvider,
) (_ *domain.SolverResult, err error) {
	defer obs.Time(ctx, "services.PlanShoppingTrip")(&err)

	stores, err := directory.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan shopping trip: list stores: %w", err)
	}
	if len(stores) == 0 {
		return nil, fmt.Errorf("plan shopping trip: %w", domain.ErrEmptyStoreSet)
	}

	matrix, err := prices.FetchPrices(ctx, list.ItemNames(), stores)
	if err != nil {
		return nil, fmt.Errorf("plan shopping trip: fetch prices: %w", err)
	}

	graph, err := BuildShoppingGraph(ctx, list.Home, stores, travel)
	if err != nil {
		return nil, fmt.Errorf("plan shopping trip: %w", err)
	}

	result, err := Solve(list, matrix, graph)
	if err != nil {
		return nil, fmt.Errorf("plan shopping trip: %w", err)
	}

	return result, nil
}
