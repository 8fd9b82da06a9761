package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for stores and current prices.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStoresQuery := `
	CREATE TABLE IF NOT EXISTS stores (
		store_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
	`

	createPricesQuery := `
	CREATE TABLE IF NOT EXISTS prices (
		ingredient TEXT NOT NULL,
		store_id TEXT NOT NULL REFERENCES stores(store_id) ON DELETE CASCADE,
		price NUMERIC(10, 2) NOT NULL,
		in_stock BOOLEAN NOT NULL,
		PRIMARY KEY (ingredient, store_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_prices_store_id
	ON prices(store_id);
	`

	statements := []string{
		createStoresQuery,
		createPricesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
