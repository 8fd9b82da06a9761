package domain

import "strings"

// DefaultMaxRouteStores bounds route enumeration when the caller does not
// set a limit. Enumeration cost grows factorially with this value.
const DefaultMaxRouteStores = 2

// A single requested ingredient. Quantity is display-only: the cost model
// prices per item, not per unit quantity.
type Item struct {
	Name     string
	Quantity string
}

// User's shopping requirements and time valuation.
//
// HourlyRate monetizes travel time (dollars per hour). Home is the start
// and end of every route. MaxRouteStores caps how many stores a single
// route may visit; zero means DefaultMaxRouteStores.
type ShoppingList struct {
	Items          []Item
	HourlyRate     float64
	Home           Coordinate
	MaxRouteStores int
}

// Validate checks configuration fields eagerly. An empty item list is
// reported as ErrEmptyShoppingList; the solver itself treats an empty list
// as a degenerate-but-valid input, so callers decide whether to reject it.
func (l ShoppingList) Validate() error {
	if err := l.Home.Validate(); err != nil {
		return err
	}
	if l.HourlyRate < 0 {
		return &ConfigurationError{Field: "hourly_rate", Reason: "must not be negative"}
	}
	if l.MaxRouteStores < 0 {
		return &ConfigurationError{Field: "max_route_stores", Reason: "must be positive"}
	}
	if len(l.Items) == 0 {
		return ErrEmptyShoppingList
	}
	return nil
}

// MaxStops resolves the configured route length limit.
func (l ShoppingList) MaxStops() int {
	if l.MaxRouteStores <= 0 {
		return DefaultMaxRouteStores
	}
	return l.MaxRouteStores
}

// ItemNames returns the unique, trimmed item names in list order.
func (l ShoppingList) ItemNames() []string {
	seen := make(map[string]struct{}, len(l.Items))
	names := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
