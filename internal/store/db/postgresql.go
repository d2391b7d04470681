package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/logging"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"go.uber.org/zap"
)

type repository struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func New(client *pgxpool.Pool, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

const locationColumns = `
	id, latitude, longitude, display_name, shop_name, product_name, address, price, image_key
`

// GetMappable returns every projection row that carries both coordinates.
func (r *repository) GetMappable(ctx context.Context) ([]store.Location, error) {
	query := `
        SELECT ` + locationColumns + `
        FROM product_locations
        WHERE latitude IS NOT NULL AND longitude IS NOT NULL
        ORDER BY id
    `

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLocations(rows)
}

func (r *repository) GetByID(ctx context.Context, id string) (*store.Location, error) {
	query := `
        SELECT ` + locationColumns + `
        FROM product_locations
        WHERE id=$1
    `

	logging.LogSQLQuery(r.logger, query)

	var row productLocationRow
	err := r.client.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.Latitude,
		&row.Longitude,
		&row.DisplayName,
		&row.ShopName,
		&row.ProductName,
		&row.Address,
		&row.Price,
		&row.ImageKey,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	location := row.toDomain()

	return &location, nil
}

// GetNearby prefilters with a bounding box in SQL; the caller refines by
// haversine distance.
func (r *repository) GetNearby(ctx context.Context, bounds geo.Bounds) ([]store.Location, error) {
	query := `
        SELECT ` + locationColumns + `
        FROM product_locations
        WHERE latitude BETWEEN $1 AND $2
          AND longitude BETWEEN $3 AND $4
        ORDER BY id
    `

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(
		ctx,
		query,
		bounds.SouthWest.Latitude,
		bounds.NorthEast.Latitude,
		bounds.SouthWest.Longitude,
		bounds.NorthEast.Longitude,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLocations(rows)
}

func scanLocations(rows pgx.Rows) ([]store.Location, error) {
	locations := make([]store.Location, 0)
	for rows.Next() {
		var row productLocationRow

		err := rows.Scan(
			&row.ID,
			&row.Latitude,
			&row.Longitude,
			&row.DisplayName,
			&row.ShopName,
			&row.ProductName,
			&row.Address,
			&row.Price,
			&row.ImageKey,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		locations = append(locations, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return locations, nil
}
