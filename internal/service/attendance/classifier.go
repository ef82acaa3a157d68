package attendance

import (
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/attendance"
	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/domain/leave"
	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
)

// Classifier derives the authoritative attendance status for one
// (employee, date). It is a pure function of its inputs: re-running it with
// the same snapshot always yields the same result, which is what lets the
// admin dashboard recompute historical statistics after a retrospective
// approval.
type Classifier struct {
	loc *time.Location
}

func NewClassifier(loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Classifier{loc: loc}
}

// ClassifyInput is the immutable snapshot for one (employee, date).
type ClassifyInput struct {
	Decision calendar.Decision
	Record   *attendance.Attendance
	Requests []leave.Request
	Trips    []trip.BusinessTrip

	// Now is the evaluation time; it only matters for distinguishing
	// "not yet due" from "mangkir" on days without a check-in.
	Now time.Time
}

// leaveStatusByKind maps approved leave kinds to their attendance status.
// Only full-day leave kinds override the day; partial-day kinds
// (early_leave, overtime, attendance_correction) do not.
var leaveStatusByKind = map[leave.Kind]attendance.Status{
	leave.KindSickLeave:      attendance.StatusSakit,
	leave.KindAnnualLeave:    attendance.StatusCuti,
	leave.KindPersonalPermit: attendance.StatusIzin,
}

// leaveKindPriority fixes which status wins when several approved full-day
// requests overlap the same date, keeping classification deterministic.
var leaveKindPriority = []leave.Kind{
	leave.KindSickLeave,
	leave.KindAnnualLeave,
	leave.KindPersonalPermit,
}

// Classify evaluates the priority rules in order; the first matching rule
// wins:
//
//  1. non-working day
//  2. approved full-day leave
//  3. assigned business trip
//  4. recorded check-in (on time / late, with early-leave overlay)
//  5. no evidence: mangkir once the day's start has passed, not yet due
//     before that
func (c *Classifier) Classify(employeeID string, date time.Time, in ClassifyInput) attendance.DayStatus {
	result := attendance.DayStatus{
		EmployeeID: employeeID,
		Date:       date,
	}
	result.Anomalies = recordAnomalies(in.Record)

	hasCheckIn := in.Record != nil && in.Record.ClockIn != nil

	// Rule 1: non-working days have no attendance semantics. This is not
	// an absence and must never be reported as mangkir.
	if !in.Decision.IsWorkingDay || in.Decision.Window == nil {
		result.Status = attendance.StatusNonWorking
		if hasCheckIn {
			result.Anomalies = append(result.Anomalies, attendance.AnomalyCheckInNonWorkingDay)
		}
		return result
	}

	// Rule 2: an approved full-day leave always overrides raw check-in
	// evidence. A check-in during approved leave is retained as an anomaly
	// note, never discarded.
	if status, ok := c.approvedLeaveStatus(date, in.Requests); ok {
		result.Status = status
		if hasCheckIn {
			result.Anomalies = append(result.Anomalies, attendance.AnomalyCheckInOnLeave)
		}
		return result
	}

	// Rule 3: an assigned business trip puts the employee on dinas for the
	// day. The check-in, if any, was already validated against the trip's
	// locations at recording time.
	for i := range in.Trips {
		if in.Trips[i].Covers(employeeID, date) {
			result.Status = attendance.StatusDinasLuar
			return result
		}
	}

	window := *in.Decision.Window

	// Rule 4: judge the recorded check-in against the expected window.
	if hasCheckIn {
		inMinute := c.minuteOfDay(*in.Record.ClockIn)
		if inMinute <= window.StartMinute {
			result.Status = attendance.StatusHadir
		} else {
			result.Status = attendance.StatusTerlambat
			result.LateMinutes = inMinute - window.StartMinute
		}

		if in.Record.ClockOut != nil {
			outMinute := c.minuteOfDay(*in.Record.ClockOut)
			if outMinute < window.EndMinute {
				result.EarlyLeave = true
				result.EarlyLeaveMinutes = window.EndMinute - outMinute
			}
		}
		return result
	}

	// Rule 5: no evidence at all. Until the day's start has passed the
	// date is simply not yet due; strictly after it, an unexcused absence.
	// The start instant itself still counts as not yet due.
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.loc).
		Add(time.Duration(window.StartMinute) * time.Minute)
	if in.Now.After(start) {
		result.Status = attendance.StatusMangkirAlpha
	} else {
		result.Status = attendance.StatusNotYetDue
	}
	return result
}

// approvedLeaveStatus finds the winning approved full-day leave covering the
// date, if any.
func (c *Classifier) approvedLeaveStatus(date time.Time, requests []leave.Request) (attendance.Status, bool) {
	covering := map[leave.Kind]bool{}
	for i := range requests {
		r := &requests[i]
		if r.Status != leave.StatusApproved {
			continue
		}
		if _, fullDay := leaveStatusByKind[r.Kind]; !fullDay {
			continue
		}
		if r.Covers(date) {
			covering[r.Kind] = true
		}
	}

	for _, kind := range leaveKindPriority {
		if covering[kind] {
			return leaveStatusByKind[kind], true
		}
	}
	return "", false
}

func (c *Classifier) minuteOfDay(t time.Time) int {
	local := t.In(c.loc)
	return local.Hour()*60 + local.Minute()
}

func recordAnomalies(record *attendance.Attendance) []attendance.Anomaly {
	if record == nil || record.LocationAnomaly == nil {
		return nil
	}
	return []attendance.Anomaly{attendance.Anomaly(*record.LocationAnomaly)}
}
