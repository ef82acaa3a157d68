package trip

import (
	"testing"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrip() trip.BusinessTrip {
	return trip.BusinessTrip{
		ID:          "trip-1",
		Title:       "Site survey Surabaya",
		StartDate:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		EmployeeIDs: []string{"emp-a", "emp-b"},
		LocationIDs: []string{"loc-1", "loc-2"},
	}
}

func TestExpand_FullCrossProduct(t *testing.T) {
	r := NewResolver()

	// 3 days, 2 employees: 6 entries, each carrying both locations.
	obligations := r.ExpandAll(sampleTrip())
	require.Len(t, obligations, 6)

	for _, ob := range obligations {
		assert.Equal(t, []string{"loc-1", "loc-2"}, ob.LocationIDs)
	}

	assert.Equal(t, "emp-a", obligations[0].EmployeeID)
	assert.Equal(t, "emp-b", obligations[1].EmployeeID)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), obligations[0].Date)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), obligations[5].Date)
}

func TestExpand_StopsEarly(t *testing.T) {
	r := NewResolver()

	var seen int
	for range r.Expand(sampleTrip()) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestExpand_Restartable(t *testing.T) {
	r := NewResolver()
	seq := r.Expand(sampleTrip())

	var first []trip.Obligation
	for ob := range seq {
		first = append(first, ob)
		if len(first) == 3 {
			break
		}
	}

	var second []trip.Obligation
	for ob := range seq {
		second = append(second, ob)
	}

	// A fresh range starts over from the beginning.
	require.Len(t, second, 6)
	assert.Equal(t, first[0], second[0])
}

func TestExpand_SingleDaySingleEmployee(t *testing.T) {
	r := NewResolver()
	tr := sampleTrip()
	tr.EndDate = tr.StartDate
	tr.EmployeeIDs = []string{"emp-a"}

	obligations := r.ExpandAll(tr)
	require.Len(t, obligations, 1)
	assert.Equal(t, "emp-a", obligations[0].EmployeeID)
}

func TestObligationsFor(t *testing.T) {
	r := NewResolver()
	trips := []trip.BusinessTrip{sampleTrip()}

	matched := r.ObligationsFor(trips, "emp-b", time.Date(2025, time.March, 11, 15, 30, 0, 0, time.UTC))
	require.Len(t, matched, 1)
	assert.Equal(t, "emp-b", matched[0].EmployeeID)

	assert.Empty(t, r.ObligationsFor(trips, "emp-b", time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, r.ObligationsFor(trips, "emp-z", time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)))
}
