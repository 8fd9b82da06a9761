package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopping-route-service/internal/api/dto"
	"shopping-route-service/internal/domain"
)

type stubDirectory struct{ stores []domain.Store }

func (s *stubDirectory) ListStores(ctx context.Context) ([]domain.Store, error) {
	return s.stores, nil
}

type stubPrices struct{ matrix *domain.PriceMatrix }

func (s *stubPrices) FetchPrices(ctx context.Context, items []string, stores []domain.Store) (*domain.PriceMatrix, error) {
	return s.matrix, nil
}

type stubTravel struct{}

// Flat 15-minute legs keep handler assertions simple.
func (s *stubTravel) TravelTimeMinutes(ctx context.Context, origin, destination domain.Coordinate) (float64, error) {
	return 15, nil
}

func testRouter() http.Handler {
	stores := []domain.Store{
		{ID: "a", Name: "Store A", Address: "1 First St", Location: domain.Coordinate{Lat: 37.77, Lon: -122.42}},
		{ID: "b", Name: "Store B", Address: "2 Second St", Location: domain.Coordinate{Lat: 37.40, Lon: -122.10}},
	}

	matrix := domain.NewPriceMatrix()
	matrix.SetPrice("milk", "a", 4.00)
	matrix.SetPrice("milk", "b", 3.50)
	matrix.SetPrice("eggs", "a", 3.00)
	matrix.SetPrice("eggs", "b", 3.60)

	home := domain.Coordinate{Lat: 37.7749, Lon: -122.4194}
	return NewRouter(&stubDirectory{stores: stores}, &stubPrices{matrix: matrix}, &stubTravel{}, home)
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestListStoresEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stores", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListStoresResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Stores) != 2 || res.Stores[0].StoreID != "a" {
		t.Fatalf("stores = %+v", res.Stores)
	}
}

func TestSolveEndpoint(t *testing.T) {
	body := `{
		"items": [{"name": "milk", "quantity": "1 gal"}, {"name": "eggs"}],
		"hourly_rate": 20
	}`

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.SolveResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// With flat travel times the single-store basket decides: A totals
	// 7.00 against B's 7.10 and any pair adds an extra 15-minute leg.
	if len(res.Winner.StoresVisited) != 1 || res.Winner.StoresVisited[0] != "a" {
		t.Fatalf("winner stores = %v, want [a]", res.Winner.StoresVisited)
	}
	if res.TotalRoutesAnalyzed != 3 {
		t.Fatalf("routes analyzed = %d, want 3", res.TotalRoutesAnalyzed)
	}
	if res.Winner.TotalCost != res.Winner.TravelCost+res.Winner.BasketCost {
		t.Fatalf("winner total %v != travel %v + basket %v",
			res.Winner.TotalCost, res.Winner.TravelCost, res.Winner.BasketCost)
	}
}

func TestSolveEndpointZeroRouteLimitSelectsDefault(t *testing.T) {
	body := `{
		"items": [{"name": "milk"}],
		"hourly_rate": 20,
		"max_route_stores": 0
	}`

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.SolveResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Default limit is 2 stores: two singles plus one pair for two stores.
	if res.TotalRoutesAnalyzed != 3 {
		t.Fatalf("routes analyzed = %d, want 3", res.TotalRoutesAnalyzed)
	}
}

func TestSolveEndpointRejectsBadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty items", `{"items": [], "hourly_rate": 20}`},
		{"negative rate", `{"items": [{"name": "milk"}], "hourly_rate": -1}`},
		{"unknown field", `{"items": [{"name": "milk"}], "hourly_rate": 20, "bogus": true}`},
		{"two json objects", `{"items": [{"name": "milk"}], "hourly_rate": 20}{}`},
		{"bad home", `{"items": [{"name": "milk"}], "hourly_rate": 20, "home": {"latitude": 99, "longitude": 0}}`},
		{"excessive route length", `{"items": [{"name": "milk"}], "hourly_rate": 20, "max_route_stores": 9}`},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(tc.body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestSolveEndpointMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/solve", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
