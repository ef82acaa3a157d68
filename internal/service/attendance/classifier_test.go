package attendance

import (
	"testing"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/attendance"
	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/domain/leave"
	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "emp-001"

var jakarta = time.FixedZone("WIB", 7*3600)

func workingDecision(date time.Time, startMinute, endMinute int) calendar.Decision {
	return calendar.Decision{
		Date:         date,
		IsWorkingDay: true,
		Window:       &calendar.Window{StartMinute: startMinute, EndMinute: endMinute},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, jakarta)
}

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, jakarta)
}

func recordWithCheckIn(date time.Time, hour, minute int) *attendance.Attendance {
	in := at(date, hour, minute)
	return &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: testEmployeeID,
		Date:       date,
		ClockIn:    &in,
	}
}

func TestClassify_NonWorkingDay(t *testing.T) {
	c := NewClassifier(jakarta)
	sunday := day(2025, time.January, 5)

	result := c.Classify(testEmployeeID, sunday, ClassifyInput{
		Decision: calendar.Decision{Date: sunday},
		Now:      at(sunday, 12, 0),
	})

	assert.Equal(t, attendance.StatusNonWorking, result.Status)
	assert.Empty(t, result.Anomalies)
}

func TestClassify_CheckInOnNonWorkingDayIsAnomalous(t *testing.T) {
	c := NewClassifier(jakarta)
	sunday := day(2025, time.January, 5)

	result := c.Classify(testEmployeeID, sunday, ClassifyInput{
		Decision: calendar.Decision{Date: sunday},
		Record:   recordWithCheckIn(sunday, 8, 0),
		Now:      at(sunday, 12, 0),
	})

	// Still non-working, but the evidence is kept and flagged.
	assert.Equal(t, attendance.StatusNonWorking, result.Status)
	assert.Contains(t, result.Anomalies, attendance.AnomalyCheckInNonWorkingDay)
}

func TestClassify_ApprovedLeaveKinds(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	cases := []struct {
		kind leave.Kind
		want attendance.Status
	}{
		{leave.KindSickLeave, attendance.StatusSakit},
		{leave.KindAnnualLeave, attendance.StatusCuti},
		{leave.KindPersonalPermit, attendance.StatusIzin},
	}

	for _, tc := range cases {
		result := c.Classify(testEmployeeID, monday, ClassifyInput{
			Decision: workingDecision(monday, 8*60, 17*60),
			Requests: []leave.Request{{
				EmployeeID: testEmployeeID,
				Kind:       tc.kind,
				StartDate:  monday,
				EndDate:    monday,
				Status:     leave.StatusApproved,
			}},
			Now: at(monday, 23, 0),
		})
		assert.Equal(t, tc.want, result.Status, "kind %s", tc.kind)
	}
}

func TestClassify_PendingLeaveDoesNotCount(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Requests: []leave.Request{{
			EmployeeID: testEmployeeID,
			Kind:       leave.KindSickLeave,
			StartDate:  monday,
			EndDate:    monday,
			Status:     leave.StatusPending,
		}},
		Now: at(monday, 23, 59),
	})

	assert.Equal(t, attendance.StatusMangkirAlpha, result.Status)
}

func TestClassify_ApprovedLeaveOverridesCheckIn(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Record:   recordWithCheckIn(monday, 7, 55),
		Requests: []leave.Request{{
			EmployeeID: testEmployeeID,
			Kind:       leave.KindAnnualLeave,
			StartDate:  monday,
			EndDate:    monday,
			Status:     leave.StatusApproved,
		}},
		Now: at(monday, 12, 0),
	})

	// Reported under the leave status; the check-in is kept as an anomaly.
	assert.Equal(t, attendance.StatusCuti, result.Status)
	assert.Contains(t, result.Anomalies, attendance.AnomalyCheckInOnLeave)
}

func TestClassify_BusinessTripWins(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Trips: []trip.BusinessTrip{{
			ID:          "trip-1",
			StartDate:   monday,
			EndDate:     monday.AddDate(0, 0, 2),
			EmployeeIDs: []string{testEmployeeID},
			LocationIDs: []string{"site-a"},
		}},
		Now: at(monday, 23, 59),
	})

	assert.Equal(t, attendance.StatusDinasLuar, result.Status)
}

func TestClassify_TripForOtherEmployeeDoesNotCount(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Trips: []trip.BusinessTrip{{
			ID:          "trip-1",
			StartDate:   monday,
			EndDate:     monday,
			EmployeeIDs: []string{"emp-999"},
			LocationIDs: []string{"site-a"},
		}},
		Now: at(monday, 23, 59),
	})

	assert.Equal(t, attendance.StatusMangkirAlpha, result.Status)
}

func TestClassify_OnTimeCheckIn(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60+45, 17*60),
		Record:   recordWithCheckIn(monday, 8, 40),
		Now:      at(monday, 18, 0),
	})

	assert.Equal(t, attendance.StatusHadir, result.Status)
	assert.Zero(t, result.LateMinutes)
	assert.False(t, result.EarlyLeave)
}

func TestClassify_LateCheckIn(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	// Check-in at 08:50 against an expected start of 08:45.
	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60+45, 17*60),
		Record:   recordWithCheckIn(monday, 8, 50),
		Now:      at(monday, 18, 0),
	})

	assert.Equal(t, attendance.StatusTerlambat, result.Status)
	assert.Equal(t, 5, result.LateMinutes)
}

func TestClassify_CheckInExactlyAtStartIsOnTime(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Record:   recordWithCheckIn(monday, 8, 0),
		Now:      at(monday, 18, 0),
	})

	assert.Equal(t, attendance.StatusHadir, result.Status)
}

func TestClassify_EarlyLeaveIsAnOverlay(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	record := recordWithCheckIn(monday, 9, 0)
	out := at(monday, 16, 0)
	record.ClockOut = &out

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Record:   record,
		Now:      at(monday, 18, 0),
	})

	// "Terlambat + PulangCepat" must be representable simultaneously.
	assert.Equal(t, attendance.StatusTerlambat, result.Status)
	assert.True(t, result.EarlyLeave)
	assert.Equal(t, 60, result.LateMinutes)
	assert.Equal(t, 60, result.EarlyLeaveMinutes)
}

func TestClassify_NoCheckInPastStartIsMangkir(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	// Evaluated at 23:59 on a working day with expected start 08:00.
	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Now:      at(monday, 23, 59),
	})

	assert.Equal(t, attendance.StatusMangkirAlpha, result.Status)
}

func TestClassify_FutureDateIsNotYetDue(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Now:      at(day(2025, time.January, 3), 10, 0),
	})

	assert.Equal(t, attendance.StatusNotYetDue, result.Status)
}

func TestClassify_TodayBeforeStartIsNotYetDue(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Now:      at(monday, 7, 30),
	})

	assert.Equal(t, attendance.StatusNotYetDue, result.Status)
}

func TestClassify_ExactlyAtStartIsStillNotYetDue(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	// At the start instant itself the employee is not yet absent; only
	// strictly past it does the missing check-in become mangkir.
	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Now:      at(monday, 8, 0),
	})
	assert.Equal(t, attendance.StatusNotYetDue, result.Status)

	result = c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Now:      at(monday, 8, 1),
	})
	assert.Equal(t, attendance.StatusMangkirAlpha, result.Status)
}

func TestClassify_RetrospectiveApprovalChangesOutcome(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)
	now := at(day(2025, time.January, 10), 9, 0)

	request := leave.Request{
		EmployeeID:      testEmployeeID,
		Kind:            leave.KindSickLeave,
		StartDate:       monday,
		EndDate:         monday,
		Status:          leave.StatusPending,
		IsRetrospective: true,
	}

	before := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Requests: []leave.Request{request},
		Now:      now,
	})
	require.Equal(t, attendance.StatusMangkirAlpha, before.Status)

	require.NoError(t, request.Approve("admin-1", nil, now))

	after := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Requests: []leave.Request{request},
		Now:      now,
	})
	assert.Equal(t, attendance.StatusSakit, after.Status)
}

func TestClassify_LocationAnomalyIsCarried(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	record := recordWithCheckIn(monday, 8, 0)
	anomaly := string(attendance.AnomalyOutsideRadius)
	record.LocationAnomaly = &anomaly

	result := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Record:   record,
		Now:      at(monday, 18, 0),
	})

	assert.Equal(t, attendance.StatusHadir, result.Status)
	assert.Contains(t, result.Anomalies, attendance.AnomalyOutsideRadius)
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	input := ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Record:   recordWithCheckIn(monday, 9, 15),
		Now:      at(monday, 18, 0),
	}

	first := c.Classify(testEmployeeID, monday, input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(testEmployeeID, monday, input))
	}
}

func TestClassify_OverlappingLeaveKindsAreDeterministic(t *testing.T) {
	c := NewClassifier(jakarta)
	monday := day(2025, time.January, 6)

	requests := []leave.Request{
		{EmployeeID: testEmployeeID, Kind: leave.KindPersonalPermit, StartDate: monday, EndDate: monday, Status: leave.StatusApproved},
		{EmployeeID: testEmployeeID, Kind: leave.KindSickLeave, StartDate: monday, EndDate: monday, Status: leave.StatusApproved},
	}
	reversed := []leave.Request{requests[1], requests[0]}

	a := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Requests: requests,
		Now:      at(monday, 23, 0),
	})
	b := c.Classify(testEmployeeID, monday, ClassifyInput{
		Decision: workingDecision(monday, 8*60, 17*60),
		Requests: reversed,
		Now:      at(monday, 23, 0),
	})

	// Input order never changes the winner.
	assert.Equal(t, attendance.StatusSakit, a.Status)
	assert.Equal(t, a.Status, b.Status)
}
