package domain

// Assignment of one shopping-list item to the cheapest store in a route.
type ItemAssignment struct {
	Item    string
	StoreID string
	Price   float64
}

// A fully evaluated route candidate: travel metrics, optimized basket and
// the combined total. Immutable planning data with no side effects.
type RouteOption struct {
	Route             Route
	TravelTimeMinutes float64
	TravelCost        float64
	Assignments       []ItemAssignment
	BasketCost        float64
	UnmetItems        []string
	TotalCost         float64
}

// UnmetCount is the number of requested items no store in the route
// carries (the inverse of coverage).
func (o RouteOption) UnmetCount() int { return len(o.UnmetItems) }

// Final solver output: the winning route, every evaluated candidate in
// rank order, and the total-cost gap to the runner-up.
type SolverResult struct {
	Winner        RouteOption
	Routes        []RouteOption
	SavingsVsNext float64
}
