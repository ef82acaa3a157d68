package calendar

import "errors"

var (
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrScheduleNotFound = errors.New("work schedule not configured")
)
