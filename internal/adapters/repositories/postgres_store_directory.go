package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopping-route-service/internal/domain"
	"shopping-route-service/internal/platform/obs"
)

// Postgres-backed implementation of the StoreDirectory port.
type PostgresStoreDirectory struct{ DB *sql.DB }

func NewPostgresStoreDirectory(db *sql.DB) *PostgresStoreDirectory {
	return &PostgresStoreDirectory{DB: db}
}

// Return all stores known to the directory, ordered by identifier.
func (p *PostgresStoreDirectory) ListStores(ctx context.Context) (_ []domain.Store, err error) {
	defer obs.Time(ctx, "directory.ListStores")(&err)

	if p.DB == nil {
		return nil, errors.New("store directory: DB is nil")
	}

	query := `
	SELECT
		store_id,
		name,
		address,
		latitude,
		longitude
	FROM stores
	ORDER BY store_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: query stores table: %w", err)
	}
	defer rows.Close()

	stores := make([]domain.Store, 0, 16)
	for rows.Next() {
		var s domain.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Location.Lat, &s.Location.Lon); err != nil {
			return nil, fmt.Errorf("list stores: scan row: %w", err)
		}
		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stores: row iteration: %w", err)
	}

	return stores, nil
}
