package postgresql

import (
	"context"
	"fmt"

	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

// Create implements location.LocationRepository.
func (r *locationRepository) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO locations (id, name, latitude, longitude, radius_meters, kind)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		loc.ID, loc.Name, loc.Center.Latitude, loc.Center.Longitude, loc.RadiusMeters, string(loc.Kind),
	).Scan(&loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}

	return loc, nil
}

// GetByID implements location.LocationRepository.
func (r *locationRepository) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters, kind, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var loc location.Location
	err := q.QueryRow(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Center.Latitude, &loc.Center.Longitude,
		&loc.RadiusMeters, &loc.Kind, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location by ID: %w", err)
	}

	return loc, nil
}

// List implements location.LocationRepository.
func (r *locationRepository) List(ctx context.Context) ([]location.Location, error) {
	return r.list(ctx, `
		SELECT id, name, latitude, longitude, radius_meters, kind, created_at, updated_at
		FROM locations
		ORDER BY name
	`)
}

// ListByKind implements location.LocationRepository.
func (r *locationRepository) ListByKind(ctx context.Context, kind location.Kind) ([]location.Location, error) {
	return r.list(ctx, `
		SELECT id, name, latitude, longitude, radius_meters, kind, created_at, updated_at
		FROM locations
		WHERE kind = $1
		ORDER BY name
	`, string(kind))
}

// ListByIDs implements location.LocationRepository.
func (r *locationRepository) ListByIDs(ctx context.Context, ids []string) ([]location.Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, `
		SELECT id, name, latitude, longitude, radius_meters, kind, created_at, updated_at
		FROM locations
		WHERE id = ANY($1)
		ORDER BY name
	`, ids)
}

// Delete implements location.LocationRepository.
func (r *locationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}
	return nil
}

func (r *locationRepository) list(ctx context.Context, query string, args ...any) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		var loc location.Location
		if err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Center.Latitude, &loc.Center.Longitude,
			&loc.RadiusMeters, &loc.Kind, &loc.CreatedAt, &loc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return locations, nil
}
