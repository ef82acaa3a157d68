package trip

import (
	"iter"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
)

// Resolver expands a business trip into its per-day, per-employee duty
// entries without materializing the full set up front. A trip spanning N
// days with M employees expands to N*M entries; callers that only need
// the first match can stop early.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Expand yields one Obligation per (day, employee) pair, days in
// ascending order and employees in assignment order within each day.
// The returned sequence can be ranged over any number of times.
func (r *Resolver) Expand(t trip.BusinessTrip) iter.Seq[trip.Obligation] {
	return func(yield func(trip.Obligation) bool) {
		start := truncate(t.StartDate)
		end := truncate(t.EndDate)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			for _, employeeID := range t.EmployeeIDs {
				ob := trip.Obligation{
					Date:        d,
					EmployeeID:  employeeID,
					LocationIDs: t.LocationIDs,
				}
				if !yield(ob) {
					return
				}
			}
		}
	}
}

// ExpandAll collects the full expansion into a slice.
func (r *Resolver) ExpandAll(t trip.BusinessTrip) []trip.Obligation {
	obligations := make([]trip.Obligation, 0, t.Days()*len(t.EmployeeIDs))
	for ob := range r.Expand(t) {
		obligations = append(obligations, ob)
	}
	return obligations
}

// ObligationsFor filters the expansion down to a single employee and date.
func (r *Resolver) ObligationsFor(trips []trip.BusinessTrip, employeeID string, date time.Time) []trip.Obligation {
	day := truncate(date)
	var matched []trip.Obligation
	for i := range trips {
		for ob := range r.Expand(trips[i]) {
			if ob.EmployeeID == employeeID && ob.Date.Equal(day) {
				matched = append(matched, ob)
			}
		}
	}
	return matched
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
