package repository

import (
	"context"
	"errors"
	"fmt"

	"seed-geocoder/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrLocationNotFound is returned when no row matches a lookup.
var ErrLocationNotFound = models.ErrLocationNotFound

const schema = `
	CREATE TABLE IF NOT EXISTS coordinates (
		id BIGSERIAL PRIMARY KEY,
		city VARCHAR(100) NOT NULL DEFAULT '',
		district VARCHAR(100) NOT NULL,
		latitude VARCHAR(32) NOT NULL,
		longitude VARCHAR(32) NOT NULL,
		UNIQUE (city, district)
	);
	CREATE INDEX IF NOT EXISTS coordinates_district_idx ON coordinates (district);
`

var copyColumns = []string{"city", "district", "latitude", "longitude"}

// Repository stores the coordinate table in PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the coordinates table if it does not exist
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// CopyLocations bulk loads locations with COPY, preserving their order in the id sequence
func (r *Repository) CopyLocations(ctx context.Context, locations []models.Location) (int64, error) {
	n, err := r.db.CopyFrom(ctx, pgx.Identifier{"coordinates"}, copyColumns, copySource(locations))
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy locations: %w", err)
	}
	return n, nil
}

// ReplaceLocations swaps the whole table for locations inside one transaction
func (r *Repository) ReplaceLocations(ctx context.Context, locations []models.Location) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE coordinates RESTART IDENTITY"); err != nil {
		return 0, fmt.Errorf("repository: failed to truncate coordinates: %w", err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"coordinates"}, copyColumns, copySource(locations))
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy locations: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit: %w", err)
	}
	return n, nil
}

func copySource(locations []models.Location) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(locations), func(i int) ([]any, error) {
		l := locations[i]
		return []any{l.City, l.District, l.Latitude, l.Longitude}, nil
	})
}

// CountLocations returns the number of rows in the coordinates table
func (r *Repository) CountLocations(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM coordinates").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count locations: %w", err)
	}
	return count, nil
}

// ListLocations returns the whole coordinate table in insertion order
func (r *Repository) ListLocations(ctx context.Context) ([]models.Location, error) {
	sql := `
		SELECT id, city, district, latitude, longitude
		FROM coordinates
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.City, &loc.District, &loc.Latitude, &loc.Longitude); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// FindLocation looks a district up, narrowed to a city when one is given
func (r *Repository) FindLocation(ctx context.Context, city, district string) (*models.Location, error) {
	sql := `
		SELECT id, city, district, latitude, longitude
		FROM coordinates
		WHERE district = $2 AND ($1 = '' OR city = $1)
		ORDER BY id
		LIMIT 1
	`

	var loc models.Location
	err := r.db.QueryRow(ctx, sql, city, district).Scan(
		&loc.ID,
		&loc.City,
		&loc.District,
		&loc.Latitude,
		&loc.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: %s/%s: %w", city, district, ErrLocationNotFound)
		}
		return nil, fmt.Errorf("repository: failed to execute lookup query: %w", err)
	}

	return &loc, nil
}
