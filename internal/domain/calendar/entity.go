package calendar

import (
	"fmt"
	"time"
)

type HolidayKind string

const (
	HolidayNational  HolidayKind = "national"
	HolidayReligious HolidayKind = "religious"
	HolidayCompany   HolidayKind = "company"
)

var HolidayKindValues = []string{
	string(HolidayNational),
	string(HolidayReligious),
	string(HolidayCompany),
}

// Holiday marks one calendar date as non-working. A date carries at most one
// holiday record; conflicting writes resolve last-write-wins.
type Holiday struct {
	Date      time.Time
	Name      string
	Kind      HolidayKind
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkDay is the weekly rule for a single weekday. Start and end are
// minute-of-day values in [0, 1439], local company time.
type WorkDay struct {
	Weekday      time.Weekday
	IsWorkingDay bool
	StartMinute  int
	EndMinute    int
}

// WorkDaySchedule holds exactly one WorkDay per weekday, Sunday through
// Saturday. Construct through NewWorkDaySchedule so the invariant holds.
type WorkDaySchedule struct {
	days [7]WorkDay
}

// NewWorkDaySchedule builds a schedule from exactly seven entries, one per
// weekday, rejecting duplicates and gaps.
func NewWorkDaySchedule(days []WorkDay) (WorkDaySchedule, error) {
	if len(days) != 7 {
		return WorkDaySchedule{}, fmt.Errorf("work schedule requires exactly 7 weekday entries, got %d", len(days))
	}

	var s WorkDaySchedule
	seen := [7]bool{}
	for _, d := range days {
		if d.Weekday < time.Sunday || d.Weekday > time.Saturday {
			return WorkDaySchedule{}, fmt.Errorf("invalid weekday %d", d.Weekday)
		}
		if seen[d.Weekday] {
			return WorkDaySchedule{}, fmt.Errorf("duplicate entry for %s", d.Weekday)
		}
		seen[d.Weekday] = true
		s.days[d.Weekday] = d
	}
	return s, nil
}

// Day returns the weekly rule for the given weekday.
func (s WorkDaySchedule) Day(w time.Weekday) WorkDay {
	return s.days[w]
}

// Days returns all seven entries in Sunday..Saturday order.
func (s WorkDaySchedule) Days() []WorkDay {
	out := make([]WorkDay, 7)
	copy(out, s.days[:])
	return out
}

// Window is the expected work-hours window for one working day,
// as minute-of-day values in local company time.
type Window struct {
	StartMinute int
	EndMinute   int
}

// Decision is the resolved calendar status for a single date.
// Window is nil on non-working days.
type Decision struct {
	Date         time.Time
	IsWorkingDay bool
	Window       *Window
	Holiday      *Holiday
}
