package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/out conflicts: evidentiary data is at-most-once per day,
	// a duplicate attempt is rejected, never overwritten.
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
