package dto

type StoreResponse struct {
	StoreID   string  `json:"store_id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListStoresResponse struct {
	Stores []StoreResponse `json:"stores"`
}
