package trip

import "time"

// BusinessTrip is an officially assigned out-of-office duty ("dinas")
// spanning one or more days, employees, and authorized locations.
// The location set applies uniformly to every day in the range.
type BusinessTrip struct {
	ID          string
	Title       string
	OrderNumber string

	StartDate time.Time
	EndDate   time.Time

	// Daily duty hours, minute-of-day in local company time.
	StartMinute int
	EndMinute   int

	EmployeeIDs []string
	LocationIDs []string

	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the trip assigns the employee on the given date.
func (t *BusinessTrip) Covers(employeeID string, date time.Time) bool {
	d := truncateToDay(date)
	if d.Before(truncateToDay(t.StartDate)) || d.After(truncateToDay(t.EndDate)) {
		return false
	}
	for _, id := range t.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// Days returns the number of calendar days in the trip's range, inclusive.
func (t *BusinessTrip) Days() int {
	start := truncateToDay(t.StartDate)
	end := truncateToDay(t.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// Obligation is one expanded per-day, per-employee duty entry: on Date, the
// employee may check in at any of the eligible locations.
type Obligation struct {
	Date        time.Time
	EmployeeID  string
	LocationIDs []string
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
