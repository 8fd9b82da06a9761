package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopping-route-service/internal/domain"
	"shopping-route-service/internal/platform/obs"
)

// Postgres-backed implementation of the PriceSource port. It reads the
// current price table maintained by the external pricing pipeline; rows
// absent from the table surface as unavailable items downstream.
type PostgresPriceSource struct{ DB *sql.DB }

func NewPostgresPriceSource(db *sql.DB) *PostgresPriceSource {
	return &PostgresPriceSource{DB: db}
}

// Materialize the price matrix for the requested items across all stores.
func (p *PostgresPriceSource) FetchPrices(
	ctx context.Context,
	items []string,
	stores []domain.Store,
) (_ *domain.PriceMatrix, err error) {
	defer obs.Time(ctx, "prices.FetchPrices")(&err)

	if p.DB == nil {
		return nil, errors.New("price source: DB is nil")
	}

	matrix := domain.NewPriceMatrix()
	if len(items) == 0 || len(stores) == 0 {
		return matrix, nil
	}

	query := `
	SELECT ingredient, store_id, price, in_stock
	FROM prices
	WHERE ingredient = ANY($1::text[]);
	`
	rows, err := p.DB.QueryContext(ctx, query, items)
	if err != nil {
		return nil, fmt.Errorf("fetch prices: query prices table: %w", err)
	}
	defer rows.Close()

	known := make(map[string]struct{}, len(stores))
	for _, s := range stores {
		known[s.ID] = struct{}{}
	}

	for rows.Next() {
		var ingredient, storeID string
		var price float64
		var inStock bool
		if err := rows.Scan(&ingredient, &storeID, &price, &inStock); err != nil {
			return nil, fmt.Errorf("fetch prices: scan row: %w", err)
		}

		// Rows for stores outside the requested set are ignored.
		if _, ok := known[storeID]; !ok {
			continue
		}

		if inStock {
			matrix.SetPrice(ingredient, storeID, price)
		} else {
			matrix.SetUnavailable(ingredient, storeID)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch prices: row iteration: %w", err)
	}

	return matrix, nil
}
