package services

import (
	"context"
	"fmt"
	"sync"

	"shopping-route-service/internal/domain"
	"shopping-route-service/internal/platform/obs"
	"shopping-route-service/internal/ports"
)

type edgeFetchResult struct {
	origin  string
	minutes map[string]float64
	err     error
}

// ShoppingGraph owns the complete set of stores plus the home node and the
// travel-time edge between every ordered pair of locations. Edges carry
// minutes only; monetization happens in the cost model so the graph stays
// valid across solves with different hourly rates.
//
// A graph is built once per solve from caller-supplied inputs and is
// read-only afterward.
type ShoppingGraph struct {
	home    domain.Coordinate
	stores  []domain.Store
	minutes map[string]float64 // "fromKey|toKey" -> travel minutes
}

// BuildShoppingGraph validates locations and fetches travel times for all
// ordered location pairs from the provider. Provider calls run on bounded
// workers since live routing providers are network-backed; the assembled
// edge map is deterministic regardless of completion order.
func BuildShoppingGraph(
	ctx context.Context,
	home domain.Coordinate,
	stores []domain.Store,
	provider ports.TravelTimeProvider,
) (_ *ShoppingGraph, err error) {
	defer obs.Time(ctx, "graph.Build")(&err)

	if err := home.Validate(); err != nil {
		return nil, fmt.Errorf("build shopping graph: home: %w", err)
	}

	coords := map[string]domain.Coordinate{domain.HomeKey: home}
	keys := make([]string, 0, len(stores)+1)
	keys = append(keys, domain.HomeKey)

	for _, s := range stores {
		if err := s.Location.Validate(); err != nil {
			return nil, fmt.Errorf("build shopping graph: store %q: %w", s.ID, err)
		}
		if _, ok := coords[s.ID]; ok {
			return nil, &domain.InputShapeError{Detail: fmt.Sprintf("duplicate store identifier %q", s.ID)}
		}
		coords[s.ID] = s.Location
		keys = append(keys, s.ID)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, 5)
	resultsCh := make(chan edgeFetchResult, len(keys))
	var wg sync.WaitGroup

	for _, origin := range keys {
		wg.Add(1)
		go func(orig string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			row := make(map[string]float64, len(keys)-1)
			for _, target := range keys {
				if target == orig {
					continue
				}
				m, e := provider.TravelTimeMinutes(ctx, coords[orig], coords[target])
				if e != nil {
					resultsCh <- edgeFetchResult{origin: orig, err: fmt.Errorf(
						"build shopping graph: travel time %q -> %q: %w", orig, target, e,
					)}
					cancel()
					return
				}
				row[target] = m
			}

			resultsCh <- edgeFetchResult{origin: orig, minutes: row}
		}(origin)
	}

	wg.Wait()
	close(resultsCh)

	minutes := make(map[string]float64, len(keys)*(len(keys)-1))
	var fetchErr error
	for res := range resultsCh {
		if res.err != nil {
			if fetchErr == nil {
				fetchErr = res.err
			}
			continue
		}
		for target, m := range res.minutes {
			minutes[res.origin+"|"+target] = m
		}
	}
	if fetchErr != nil {
		return nil, fetchErr
	}

	return &ShoppingGraph{home: home, stores: stores, minutes: minutes}, nil
}

// Stores returns the graph's store set in construction order.
func (g *ShoppingGraph) Stores() []domain.Store { return g.stores }

// Segment returns the directed edge between two location keys.
func (g *ShoppingGraph) Segment(from, to string) (domain.RouteSegment, error) {
	if from == to {
		return domain.RouteSegment{From: from, To: to}, nil
	}
	m, ok := g.minutes[from+"|"+to]
	if !ok {
		return domain.RouteSegment{}, fmt.Errorf("shopping graph: missing edge %q -> %q", from, to)
	}
	return domain.RouteSegment{From: from, To: to, TravelTimeMinutes: m}, nil
}

// RouteMinutes sums travel time over a route's consecutive legs, including
// the closing leg back home.
func (g *ShoppingGraph) RouteMinutes(r domain.Route) (float64, error) {
	keys := r.LocationKeys()

	total := 0.0
	for i := 0; i < len(keys)-1; i++ {
		seg, err := g.Segment(keys[i], keys[i+1])
		if err != nil {
			return 0, fmt.Errorf("route minutes: %w", err)
		}
		total += seg.TravelTimeMinutes
	}

	return total, nil
}
