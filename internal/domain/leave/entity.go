package leave

import "time"

type Kind string

const (
	KindSickLeave            Kind = "sick_leave"
	KindAnnualLeave          Kind = "annual_leave"
	KindPersonalPermit       Kind = "personal_permit"
	KindEarlyLeave           Kind = "early_leave"
	KindOvertime             Kind = "overtime"
	KindAttendanceCorrection Kind = "attendance_correction"
)

var KindValues = []string{
	string(KindSickLeave),
	string(KindAnnualLeave),
	string(KindPersonalPermit),
	string(KindEarlyLeave),
	string(KindOvertime),
	string(KindAttendanceCorrection),
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a leave/overtime/correction request. Once decided it is never
// mutated again; a changed decision is recorded as a new request.
type Request struct {
	ID         string
	EmployeeID string
	Kind       Kind

	StartDate time.Time
	EndDate   time.Time

	// Optional time-of-day range, minute-of-day, for partial-day kinds
	// (early_leave, overtime, attendance_correction).
	StartMinute *int
	EndMinute   *int

	Reason        string
	AttachmentURL *string

	Status          Status
	IsRetrospective bool

	DecidedBy    *string
	DecidedAt    *time.Time
	DecisionNote *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	EmployeeName *string
}

// IsTerminal reports whether the request has been decided.
func (r *Request) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// Approve transitions pending -> approved. Approved and rejected are
// terminal; a second decision attempt fails with ErrRequestAlreadyProcessed.
func (r *Request) Approve(adminID string, note *string, now time.Time) error {
	if r.IsTerminal() {
		return ErrRequestAlreadyProcessed
	}
	r.Status = StatusApproved
	r.DecidedBy = &adminID
	r.DecidedAt = &now
	r.DecisionNote = note
	return nil
}

// Reject transitions pending -> rejected.
func (r *Request) Reject(adminID string, note *string, now time.Time) error {
	if r.IsTerminal() {
		return ErrRequestAlreadyProcessed
	}
	r.Status = StatusRejected
	r.DecidedBy = &adminID
	r.DecidedAt = &now
	r.DecisionNote = note
	return nil
}

// Covers reports whether the request's date range includes the given date.
// Both ends are inclusive; only the calendar day matters.
func (r *Request) Covers(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(r.StartDate)) && !d.After(truncateToDay(r.EndDate))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
