package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// calendar date, or nil when none exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, att Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// GetMyAttendance retrieves records of one employee
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// ListByDateRange retrieves all records with start <= date <= end
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
}
