package services

import (
	"context"
	"testing"

	"shopping-route-service/internal/adapters/travel"
	"shopping-route-service/internal/domain"
)

func TestEnumerateRoutesSingleAndPairs(t *testing.T) {
	graph := buildTestGraph(t, []domain.Store{testStoreB, testStoreA})

	routes, err := EnumerateRoutes(graph, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two singles plus one representative per unordered pair.
	sigs := make([]string, 0, len(routes))
	for _, r := range routes {
		sigs = append(sigs, r.Signature())
	}

	want := []string{"a", "b", "a>b"}
	if len(sigs) != len(want) {
		t.Fatalf("route signatures = %v, want %v", sigs, want)
	}
	for i := range want {
		if sigs[i] != want[i] {
			t.Fatalf("route signatures = %v, want %v", sigs, want)
		}
	}
}

func TestEnumerateRoutesKeepsCheaperOrdering(t *testing.T) {
	// Asymmetric return legs make A-first strictly cheaper:
	// home->A->B->home = 10+10+10 = 30, home->B->A->home = 10+10+40 = 60.
	locA := domain.Coordinate{Lat: 37.7700, Lon: -122.4200}
	locB := domain.Coordinate{Lat: 37.4000, Lon: -122.1000}
	storeA := domain.Store{ID: "a", Name: "Store A", Location: locA}
	storeB := domain.Store{ID: "b", Name: "Store B", Location: locB}

	legs := []travel.MockLeg{
		{From: testHome, To: locA, Minutes: 10},
		{From: locA, To: testHome, Minutes: 40},
		{From: testHome, To: locB, Minutes: 10},
		{From: locB, To: testHome, Minutes: 10},
		{From: locA, To: locB, Minutes: 10},
		{From: locB, To: locA, Minutes: 10},
	}

	graph, err := BuildShoppingGraph(context.Background(), testHome, []domain.Store{storeA, storeB}, travel.NewMockProvider(legs))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	routes, err := EnumerateRoutes(graph, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var pair domain.Route
	for _, r := range routes {
		if len(r.Stores) == 2 {
			pair = r
		}
	}
	if pair.Signature() != "a>b" {
		t.Fatalf("pair ordering = %q, want a>b (the cheaper round trip)", pair.Signature())
	}

	minutes, err := graph.RouteMinutes(pair)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if minutes != 30 {
		t.Fatalf("pair minutes = %v, want 30", minutes)
	}
}

func TestEnumerateRoutesMaxStopsCappedByStoreCount(t *testing.T) {
	graph := buildTestGraph(t, []domain.Store{testStoreA})

	routes, err := EnumerateRoutes(graph, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 1 || routes[0].Signature() != "a" {
		t.Fatalf("routes = %v, want single route a", routes)
	}
}

func TestEnumerateRoutesRejectsNonPositiveLimit(t *testing.T) {
	graph := buildTestGraph(t, []domain.Store{testStoreA})

	if _, err := EnumerateRoutes(graph, 0); err == nil {
		t.Fatal("expected error for non-positive max stops")
	}
}
