package calendar

import "context"

// CalendarService defines admin operations on the work calendar.
type CalendarService interface {
	// GetSchedule retrieves the weekly work schedule
	GetSchedule(ctx context.Context) (ScheduleResponse, error)

	// UpdateSchedule replaces the weekly work schedule
	UpdateSchedule(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)

	// ListHolidays retrieves all registered holidays
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)

	// UpsertHoliday registers or replaces a holiday for a date
	UpsertHoliday(ctx context.Context, req UpsertHolidayRequest) (HolidayResponse, error)

	// DeleteHoliday removes the holiday on a date
	DeleteHoliday(ctx context.Context, date string) error
}
