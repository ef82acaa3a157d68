package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) calendar.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Get implements calendar.ScheduleRepository.
func (r *scheduleRepository) Get(ctx context.Context) (calendar.WorkDaySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT weekday, is_working_day, start_minute, end_minute
		FROM work_days
		ORDER BY weekday
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return calendar.WorkDaySchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	defer rows.Close()

	var days []calendar.WorkDay
	for rows.Next() {
		var weekday int
		var d calendar.WorkDay
		if err := rows.Scan(&weekday, &d.IsWorkingDay, &d.StartMinute, &d.EndMinute); err != nil {
			return calendar.WorkDaySchedule{}, fmt.Errorf("failed to scan work day: %w", err)
		}
		d.Weekday = time.Weekday(weekday)
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return calendar.WorkDaySchedule{}, fmt.Errorf("failed to iterate work days: %w", err)
	}

	schedule, err := calendar.NewWorkDaySchedule(days)
	if err != nil {
		return calendar.WorkDaySchedule{}, fmt.Errorf("stored work schedule is invalid: %w", err)
	}
	return schedule, nil
}

// Save implements calendar.ScheduleRepository. The seven rows are replaced
// in one transaction so readers never observe a partial schedule.
func (r *scheduleRepository) Save(ctx context.Context, schedule calendar.WorkDaySchedule) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM work_days`); err != nil {
			return fmt.Errorf("failed to clear work schedule: %w", err)
		}

		query := `
			INSERT INTO work_days (weekday, is_working_day, start_minute, end_minute)
			VALUES ($1, $2, $3, $4)
		`
		for _, d := range schedule.Days() {
			if _, err := tx.Exec(ctx, query, int(d.Weekday), d.IsWorkingDay, d.StartMinute, d.EndMinute); err != nil {
				return fmt.Errorf("failed to insert work day: %w", err)
			}
		}
		return nil
	})
}
