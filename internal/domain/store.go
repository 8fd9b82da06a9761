package domain

// Represents a grocery store node in the shopping graph.
// A Store is immutable once constructed; the graph that references it
// owns its lifetime for the duration of one solve.
type Store struct {
	ID       string
	Name     string
	Address  string
	Location Coordinate
}
