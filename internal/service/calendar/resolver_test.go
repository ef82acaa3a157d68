package calendar

import (
	"testing"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// officeSchedule is a standard Mon-Fri 08:00-17:00 week.
func officeSchedule(t *testing.T) calendar.WorkDaySchedule {
	t.Helper()
	days := make([]calendar.WorkDay, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := calendar.WorkDay{Weekday: wd}
		if wd != time.Sunday && wd != time.Saturday {
			day.IsWorkingDay = true
			day.StartMinute = 8 * 60
			day.EndMinute = 17 * 60
		}
		days = append(days, day)
	}
	s, err := calendar.NewWorkDaySchedule(days)
	require.NoError(t, err)
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_SundayIsNonWorking(t *testing.T) {
	r := NewResolver()
	// 2025-01-05 is a Sunday with no holiday record.
	sunday := date(2025, time.January, 5)
	require.Equal(t, time.Sunday, sunday.Weekday())

	decision := r.Resolve(sunday, officeSchedule(t), nil)
	assert.False(t, decision.IsWorkingDay)
	assert.Nil(t, decision.Window)
}

func TestResolve_WorkingDayHasWindow(t *testing.T) {
	r := NewResolver()
	monday := date(2025, time.January, 6)

	decision := r.Resolve(monday, officeSchedule(t), nil)
	assert.True(t, decision.IsWorkingDay)
	require.NotNil(t, decision.Window)
	assert.Equal(t, 8*60, decision.Window.StartMinute)
	assert.Equal(t, 17*60, decision.Window.EndMinute)
}

func TestResolve_HolidayOverridesWorkingWeekday(t *testing.T) {
	r := NewResolver()
	// 2025-03-31 is a Monday; Idul Fitri makes it non-working regardless.
	monday := date(2025, time.March, 31)
	require.Equal(t, time.Monday, monday.Weekday())

	holidays := []calendar.Holiday{
		{Date: monday, Name: "Idul Fitri", Kind: calendar.HolidayReligious},
	}

	decision := r.Resolve(monday, officeSchedule(t), holidays)
	assert.False(t, decision.IsWorkingDay)
	assert.Nil(t, decision.Window)
	require.NotNil(t, decision.Holiday)
	assert.Equal(t, "Idul Fitri", decision.Holiday.Name)
}

func TestResolve_HolidayOnWeekendStaysNonWorking(t *testing.T) {
	r := NewResolver()
	sunday := date(2025, time.June, 1)
	require.Equal(t, time.Sunday, sunday.Weekday())

	holidays := []calendar.Holiday{
		{Date: sunday, Name: "Hari Lahir Pancasila", Kind: calendar.HolidayNational},
	}

	assert.False(t, r.IsWorkingDay(sunday, officeSchedule(t), holidays))
}

func TestResolve_ZeroWorkingDayScheduleIsLegal(t *testing.T) {
	days := make([]calendar.WorkDay, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		days = append(days, calendar.WorkDay{Weekday: wd})
	}
	schedule, err := calendar.NewWorkDaySchedule(days)
	require.NoError(t, err)

	r := NewResolver()
	for d := 1; d <= 7; d++ {
		assert.False(t, r.IsWorkingDay(date(2025, time.July, d), schedule, nil))
	}
}

func TestNewWorkDaySchedule_RejectsBadInput(t *testing.T) {
	_, err := calendar.NewWorkDaySchedule(nil)
	assert.Error(t, err)

	days := make([]calendar.WorkDay, 7)
	for i := range days {
		days[i] = calendar.WorkDay{Weekday: time.Monday} // all duplicates
	}
	_, err = calendar.NewWorkDaySchedule(days)
	assert.Error(t, err)
}

func TestExpectedWindow_NilOnNonWorkingDay(t *testing.T) {
	r := NewResolver()
	saturday := date(2025, time.January, 4)
	assert.Nil(t, r.ExpectedWindow(saturday, officeSchedule(t), nil))
}
