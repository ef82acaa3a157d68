package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type tripRepository struct {
	db *database.DB
}

func NewTripRepository(db *database.DB) trip.TripRepository {
	return &tripRepository{db: db}
}

// Create implements trip.TripRepository. The trip row and its assignment
// rows are written in one transaction.
func (r *tripRepository) Create(ctx context.Context, t trip.BusinessTrip) (trip.BusinessTrip, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO business_trips (
				id, title, order_number, start_date, end_date,
				start_minute, end_minute, created_by
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8
			) RETURNING created_at, updated_at
		`
		if err := tx.QueryRow(ctx, query,
			t.ID, t.Title, t.OrderNumber, t.StartDate, t.EndDate,
			t.StartMinute, t.EndMinute, t.CreatedBy,
		).Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
			return fmt.Errorf("failed to create business trip: %w", err)
		}

		for _, employeeID := range t.EmployeeIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO business_trip_employees (trip_id, employee_id) VALUES ($1, $2)`,
				t.ID, employeeID,
			); err != nil {
				return fmt.Errorf("failed to assign trip employee: %w", err)
			}
		}

		for _, locationID := range t.LocationIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO business_trip_locations (trip_id, location_id) VALUES ($1, $2)`,
				t.ID, locationID,
			); err != nil {
				return fmt.Errorf("failed to assign trip location: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return trip.BusinessTrip{}, err
	}

	return t, nil
}

// GetByID implements trip.TripRepository.
func (r *tripRepository) GetByID(ctx context.Context, id string) (trip.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.order_number, t.start_date, t.end_date,
			   t.start_minute, t.end_minute, t.created_by, t.created_at, t.updated_at,
			   COALESCE(array_agg(DISTINCT te.employee_id) FILTER (WHERE te.employee_id IS NOT NULL), '{}'),
			   COALESCE(array_agg(DISTINCT tl.location_id) FILTER (WHERE tl.location_id IS NOT NULL), '{}')
		FROM business_trips t
		LEFT JOIN business_trip_employees te ON te.trip_id = t.id
		LEFT JOIN business_trip_locations tl ON tl.trip_id = t.id
		WHERE t.id = $1
		GROUP BY t.id
	`

	t, err := scanTrip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return trip.BusinessTrip{}, trip.ErrTripNotFound
		}
		return trip.BusinessTrip{}, fmt.Errorf("failed to get business trip by ID: %w", err)
	}

	return t, nil
}

// List implements trip.TripRepository.
func (r *tripRepository) List(ctx context.Context, filter trip.TripFilter) ([]trip.BusinessTrip, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []any{}
	argIdx := 1
	if filter.EmployeeID != "" {
		where = fmt.Sprintf("t.id IN (SELECT trip_id FROM business_trip_employees WHERE employee_id = $%d)", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM business_trips t WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count business trips: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.title, t.order_number, t.start_date, t.end_date,
			   t.start_minute, t.end_minute, t.created_by, t.created_at, t.updated_at,
			   COALESCE(array_agg(DISTINCT te.employee_id) FILTER (WHERE te.employee_id IS NOT NULL), '{}'),
			   COALESCE(array_agg(DISTINCT tl.location_id) FILTER (WHERE tl.location_id IS NOT NULL), '{}')
		FROM business_trips t
		LEFT JOIN business_trip_employees te ON te.trip_id = t.id
		LEFT JOIN business_trip_locations tl ON tl.trip_id = t.id
		WHERE %s
		GROUP BY t.id
		ORDER BY t.start_date DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list business trips: %w", err)
	}
	defer rows.Close()

	trips, err := scanTrips(rows)
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

// ListByEmployeeAndRange implements trip.TripRepository.
func (r *tripRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]trip.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.order_number, t.start_date, t.end_date,
			   t.start_minute, t.end_minute, t.created_by, t.created_at, t.updated_at,
			   COALESCE(array_agg(DISTINCT te.employee_id) FILTER (WHERE te.employee_id IS NOT NULL), '{}'),
			   COALESCE(array_agg(DISTINCT tl.location_id) FILTER (WHERE tl.location_id IS NOT NULL), '{}')
		FROM business_trips t
		LEFT JOIN business_trip_employees te ON te.trip_id = t.id
		LEFT JOIN business_trip_locations tl ON tl.trip_id = t.id
		WHERE t.start_date <= $3
		  AND t.end_date >= $2
		  AND t.id IN (SELECT trip_id FROM business_trip_employees WHERE employee_id = $1)
		GROUP BY t.id
		ORDER BY t.start_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips by employee and range: %w", err)
	}
	defer rows.Close()

	return scanTrips(rows)
}

// ListOverlapping implements trip.TripRepository.
func (r *tripRepository) ListOverlapping(ctx context.Context, start, end time.Time) ([]trip.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.order_number, t.start_date, t.end_date,
			   t.start_minute, t.end_minute, t.created_by, t.created_at, t.updated_at,
			   COALESCE(array_agg(DISTINCT te.employee_id) FILTER (WHERE te.employee_id IS NOT NULL), '{}'),
			   COALESCE(array_agg(DISTINCT tl.location_id) FILTER (WHERE tl.location_id IS NOT NULL), '{}')
		FROM business_trips t
		LEFT JOIN business_trip_employees te ON te.trip_id = t.id
		LEFT JOIN business_trip_locations tl ON tl.trip_id = t.id
		WHERE t.start_date <= $2
		  AND t.end_date >= $1
		GROUP BY t.id
		ORDER BY t.start_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping trips: %w", err)
	}
	defer rows.Close()

	return scanTrips(rows)
}

// Delete implements trip.TripRepository. Assignment rows cascade.
func (r *tripRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM business_trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete business trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return trip.ErrTripNotFound
	}
	return nil
}

func scanTrip(row pgx.Row) (trip.BusinessTrip, error) {
	var t trip.BusinessTrip
	err := row.Scan(
		&t.ID, &t.Title, &t.OrderNumber, &t.StartDate, &t.EndDate,
		&t.StartMinute, &t.EndMinute, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeIDs, &t.LocationIDs,
	)
	return t, err
}

func scanTrips(rows pgx.Rows) ([]trip.BusinessTrip, error) {
	var trips []trip.BusinessTrip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate business trips: %w", err)
	}
	return trips, nil
}
