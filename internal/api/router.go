package api

import (
	"net/http"

	"shopping-route-service/internal/api/handlers"
	"shopping-route-service/internal/domain"
	"shopping-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	directory ports.StoreDirectory,
	prices ports.PriceSource,
	travel ports.TravelTimeProvider,
	defaultHome domain.Coordinate,
) http.Handler {
	mux := http.NewServeMux()

	storeHandler := &handlers.StoreHandler{Directory: directory}
	solveHandler := &handlers.SolveHandler{
		Directory:   directory,
		Prices:      prices,
		Travel:      travel,
		DefaultHome: defaultHome,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stores", storeHandler.List)
	mux.HandleFunc("/solve", solveHandler.Solve)

	return loggingMiddleware(mux)
}
