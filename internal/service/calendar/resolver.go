package calendar

import (
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
)

// Resolver decides whether a date is a working day and what its expected
// work-hours window is. It is a pure function of its arguments and holds no
// state; callers always pass the full schedule/holiday snapshot.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve combines the weekday rule with the holiday set for one date.
// A holiday overrides the weekday flag unconditionally: a holiday on a
// normally-working day is non-working, and a holiday on a weekend changes
// nothing further.
func (r *Resolver) Resolve(date time.Time, schedule calendar.WorkDaySchedule, holidays []calendar.Holiday) calendar.Decision {
	decision := calendar.Decision{Date: date}

	for i := range holidays {
		if sameDate(holidays[i].Date, date) {
			decision.Holiday = &holidays[i]
			return decision
		}
	}

	day := schedule.Day(date.Weekday())
	if !day.IsWorkingDay {
		return decision
	}

	decision.IsWorkingDay = true
	decision.Window = &calendar.Window{
		StartMinute: day.StartMinute,
		EndMinute:   day.EndMinute,
	}
	return decision
}

// IsWorkingDay reports whether the date is a working day.
func (r *Resolver) IsWorkingDay(date time.Time, schedule calendar.WorkDaySchedule, holidays []calendar.Holiday) bool {
	return r.Resolve(date, schedule, holidays).IsWorkingDay
}

// ExpectedWindow returns the work-hours window for the date, or nil on
// non-working days.
func (r *Resolver) ExpectedWindow(date time.Time, schedule calendar.WorkDaySchedule, holidays []calendar.Holiday) *calendar.Window {
	return r.Resolve(date, schedule, holidays).Window
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
