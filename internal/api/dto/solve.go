package dto

type SolveItemRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type CoordinateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SolveRequest struct {
	Items          []SolveItemRequest `json:"items"`
	HourlyRate     float64            `json:"hourly_rate"`
	Home           *CoordinateRequest `json:"home"`
	MaxRouteStores int                `json:"max_route_stores"`
}

type ItemAssignmentResponse struct {
	Ingredient string  `json:"ingredient"`
	StoreID    string  `json:"store_id"`
	Price      float64 `json:"price"`
}

type RouteOptionResponse struct {
	Route             []string                 `json:"route"`
	StoresVisited     []string                 `json:"stores_visited"`
	TravelTimeMinutes float64                  `json:"travel_time_minutes"`
	TravelCost        float64                  `json:"travel_cost"`
	Items             []ItemAssignmentResponse `json:"items"`
	BasketCost        float64                  `json:"basket_cost"`
	UnmetItems        []string                 `json:"unmet_items"`
	UnmetCount        int                      `json:"unmet_count"`
	TotalCost         float64                  `json:"total_cost"`
}

type SolveResponse struct {
	Winner              RouteOptionResponse   `json:"winner_route"`
	TotalRoutesAnalyzed int                   `json:"total_routes_analyzed"`
	SavingsVsSecondBest float64               `json:"savings_vs_second_best"`
	AllRoutes           []RouteOptionResponse `json:"all_routes"`
}
