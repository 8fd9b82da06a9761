package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"shopping-route-service/internal/api/dto"
	"shopping-route-service/internal/domain"
	"shopping-route-service/internal/ports"
	"shopping-route-service/internal/services"
)

type SolveHandler struct {
	Directory ports.StoreDirectory
	Prices    ports.PriceSource
	Travel    ports.TravelTimeProvider
	// DefaultHome is used when the request omits a home coordinate.
	DefaultHome domain.Coordinate
}

// Solve runs the full shopping trip optimization for one request.
// It coordinates directory access, price materialization, graph
// construction and the solver.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SolveRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Items) == 0 {
		writeError(w, r, http.StatusBadRequest, "items must not be empty")
		return
	}
	if req.HourlyRate < 0 {
		writeError(w, r, http.StatusBadRequest, "hourly_rate must not be negative")
		return
	}
	if req.MaxRouteStores < 0 || req.MaxRouteStores > 4 {
		writeError(w, r, http.StatusBadRequest, "max_route_stores must be between 1 and 4 (omit or 0 for the default)")
		return
	}

	home := h.DefaultHome
	if req.Home != nil {
		home = domain.Coordinate{Lat: req.Home.Latitude, Lon: req.Home.Longitude}
	}

	items := make([]domain.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.Item{Name: it.Name, Quantity: it.Quantity})
	}

	list := domain.ShoppingList{
		Items:          items,
		HourlyRate:     req.HourlyRate,
		Home:           home,
		MaxRouteStores: req.MaxRouteStores,
	}
	if err := list.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.PlanShoppingTrip(r.Context(), list, h.Directory, h.Prices, h.Travel)
	if err != nil {
		var cfgErr *domain.ConfigurationError
		var shapeErr *domain.InputShapeError
		switch {
		case errors.Is(err, domain.ErrEmptyStoreSet):
			writeError(w, r, http.StatusConflict, "no stores available for planning")
		case errors.As(err, &cfgErr), errors.As(err, &shapeErr):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			log.Printf("plan shopping trip failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	res := dto.SolveResponse{
		Winner:              toRouteOptionResponse(result.Winner),
		TotalRoutesAnalyzed: len(result.Routes),
		SavingsVsSecondBest: result.SavingsVsNext,
		AllRoutes:           make([]dto.RouteOptionResponse, 0, len(result.Routes)),
	}
	for _, opt := range result.Routes {
		res.AllRoutes = append(res.AllRoutes, toRouteOptionResponse(opt))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toRouteOptionResponse(opt domain.RouteOption) dto.RouteOptionResponse {
	visited := make([]string, 0, len(opt.Route.Stores))
	for _, s := range opt.Route.Stores {
		visited = append(visited, s.ID)
	}

	items := make([]dto.ItemAssignmentResponse, 0, len(opt.Assignments))
	for _, a := range opt.Assignments {
		items = append(items, dto.ItemAssignmentResponse{
			Ingredient: a.Item,
			StoreID:    a.StoreID,
			Price:      a.Price,
		})
	}

	unmet := opt.UnmetItems
	if unmet == nil {
		unmet = []string{}
	}

	return dto.RouteOptionResponse{
		Route:             opt.Route.DisplayNames(),
		StoresVisited:     visited,
		TravelTimeMinutes: opt.TravelTimeMinutes,
		TravelCost:        opt.TravelCost,
		Items:             items,
		BasketCost:        opt.BasketCost,
		UnmetItems:        unmet,
		UnmetCount:        opt.UnmetCount(),
		TotalCost:         opt.TotalCost,
	}
}
