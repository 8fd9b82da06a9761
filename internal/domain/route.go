package domain

import "strings"

// HomeKey is the graph location key for the traveler's home node.
const HomeKey = "HOME"

// Represents one leg of a route between two graph locations (home or a
// store, identified by location key). Travel cost is not stored on the
// edge: it is derived from minutes and the shopping list's hourly rate at
// evaluation time, so a rate change between solves can never go stale.
type RouteSegment struct {
	From              string
	To                string
	TravelTimeMinutes float64
}

// Route is an ordered store-visitation sequence starting and ending at
// home. Visit order affects travel time only; the unordered store set is
// what basket optimization uses.
type Route struct {
	Stores []Store
}

// LocationKeys returns the full HOME -> stores -> HOME key sequence.
func (r Route) LocationKeys() []string {
	keys := make([]string, 0, len(r.Stores)+2)
	keys = append(keys, HomeKey)
	for _, s := range r.Stores {
		keys = append(keys, s.ID)
	}
	return append(keys, HomeKey)
}

// DisplayNames returns the HOME -> store names -> HOME visit sequence.
func (r Route) DisplayNames() []string {
	names := make([]string, 0, len(r.Stores)+2)
	names = append(names, HomeKey)
	for _, s := range r.Stores {
		names = append(names, s.Name)
	}
	return append(names, HomeKey)
}

// Signature is a stable identity for the route's visit order, used as the
// final ranking tie-break so repeated solves order identically.
func (r Route) Signature() string {
	ids := make([]string, 0, len(r.Stores))
	for _, s := range r.Stores {
		ids = append(ids, s.ID)
	}
	return strings.Join(ids, ">")
}
