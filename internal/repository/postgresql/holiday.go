package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepository{db: db}
}

// List implements calendar.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name, kind, created_at, updated_at
		FROM holidays
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// ListByRange implements calendar.HolidayRepository.
func (r *holidayRepository) ListByRange(ctx context.Context, start, end time.Time) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name, kind, created_at, updated_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays by range: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// Upsert implements calendar.HolidayRepository. One holiday per date,
// last write wins.
func (r *holidayRepository) Upsert(ctx context.Context, holiday calendar.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, name, kind)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE
		SET name = EXCLUDED.name, kind = EXCLUDED.kind, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, holiday.Date, holiday.Name, string(holiday.Kind)); err != nil {
		return fmt.Errorf("failed to upsert holiday: %w", err)
	}
	return nil
}

// DeleteByDate implements calendar.HolidayRepository.
func (r *holidayRepository) DeleteByDate(ctx context.Context, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrHolidayNotFound
	}
	return nil
}

func scanHolidays(rows pgx.Rows) ([]calendar.Holiday, error) {
	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.Kind, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}
	return holidays, nil
}
