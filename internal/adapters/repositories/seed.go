package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"shopping-route-service/internal/domain"
)

type PriceSeed struct {
	Ingredient string  `json:"ingredient"`
	Price      float64 `json:"price"`
	InStock    bool    `json:"in_stock"`
}

type StoreSeed struct {
	StoreID   string      `json:"store_id"`
	Name      string      `json:"name"`
	Address   string      `json:"address"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Prices    []PriceSeed `json:"prices"`
}

// LoadSeedFile reads and validates a store/price seed JSON file.
func LoadSeedFile(jsonPath string) ([]StoreSeed, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed stores: read %q: %w", jsonPath, err)
	}

	var data []StoreSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("seed stores: parse json: %w", err)
	}

	for i, s := range data {
		if strings.TrimSpace(s.StoreID) == "" {
			return nil, fmt.Errorf("seed stores: entry %d: store_id cannot be empty", i+1)
		}
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("seed stores: store %q: name cannot be empty", s.StoreID)
		}
		coord := domain.Coordinate{Lat: s.Latitude, Lon: s.Longitude}
		if err := coord.Validate(); err != nil {
			return nil, fmt.Errorf("seed stores: store %q: %w", s.StoreID, err)
		}
		for _, p := range s.Prices {
			if strings.TrimSpace(p.Ingredient) == "" {
				return nil, fmt.Errorf("seed stores: store %q: ingredient name cannot be empty", s.StoreID)
			}
			if p.Price < 0 || math.IsNaN(p.Price) {
				return nil, fmt.Errorf(
					"seed stores: store %q: invalid price %v for %q",
					s.StoreID, p.Price, p.Ingredient,
				)
			}
		}
	}

	return data, nil
}

// Populate the database with store and price data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	data, err := LoadSeedFile(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stores: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	storeStmt, err := tx.Prepare(`
	INSERT INTO stores (store_id, name, address, latitude, longitude)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (store_id) DO UPDATE
	SET name = EXCLUDED.name,
		address = EXCLUDED.address,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`)
	if err != nil {
		return fmt.Errorf("seed stores: prepare store insert: %w", err)
	}
	defer storeStmt.Close()

	priceStmt, err := tx.Prepare(`
	INSERT INTO prices (ingredient, store_id, price, in_stock)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (ingredient, store_id) DO UPDATE
	SET price = EXCLUDED.price,
		in_stock = EXCLUDED.in_stock;
	`)
	if err != nil {
		return fmt.Errorf("seed stores: prepare price insert: %w", err)
	}
	defer priceStmt.Close()

	for _, s := range data {
		if _, err := storeStmt.Exec(s.StoreID, s.Name, s.Address, s.Latitude, s.Longitude); err != nil {
			return fmt.Errorf("seed stores: insert store %q: %w", s.StoreID, err)
		}
		for _, p := range s.Prices {
			if _, err := priceStmt.Exec(p.Ingredient, s.StoreID, p.Price, p.InStock); err != nil {
				return fmt.Errorf("seed stores: insert price %q at %q: %w", p.Ingredient, s.StoreID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stores: commit tx: %w", err)
	}

	return nil
}
