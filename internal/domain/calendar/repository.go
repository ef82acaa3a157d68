package calendar

import (
	"context"
	"time"
)

// ScheduleRepository stores the single weekly work schedule of the
// organization.
type ScheduleRepository interface {
	// Get retrieves the weekly schedule
	Get(ctx context.Context) (WorkDaySchedule, error)

	// Save replaces the weekly schedule atomically
	Save(ctx context.Context, schedule WorkDaySchedule) error
}

// HolidayRepository stores special non-working dates.
type HolidayRepository interface {
	// List retrieves all holidays ordered by date
	List(ctx context.Context) ([]Holiday, error)

	// ListByRange retrieves holidays with start <= date <= end
	ListByRange(ctx context.Context, start, end time.Time) ([]Holiday, error)

	// Upsert inserts or replaces the holiday for its date (last write wins)
	Upsert(ctx context.Context, holiday Holiday) error

	// DeleteByDate removes the holiday on the given date
	DeleteByDate(ctx context.Context, date time.Time) error
}
