package handlers

import (
	"log"
	"net/http"

	"shopping-route-service/internal/api/dto"
	"shopping-route-service/internal/ports"
)

// StoreHandler exposes read-only store directory endpoints.
type StoreHandler struct {
	Directory ports.StoreDirectory
}

func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stores, err := h.Directory.ListStores(r.Context())
	if err != nil {
		log.Printf("list stores failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStoresResponse{
		Stores: make([]dto.StoreResponse, 0, len(stores)),
	}
	for _, s := range stores {
		res.Stores = append(res.Stores, dto.StoreResponse{
			StoreID:   s.ID,
			Name:      s.Name,
			Address:   s.Address,
			Latitude:  s.Location.Lat,
			Longitude: s.Location.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
