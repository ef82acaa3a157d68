package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn records a geolocated selfie check-in for the authenticated
	// employee
	CheckIn(ctx context.Context, req CheckRequest) (CheckResponse, error)

	// CheckOut records the matching check-out
	CheckOut(ctx context.Context, req CheckRequest) (CheckResponse, error)

	// GetMyAttendance retrieves classified records of the authenticated
	// employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves classified records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single classified record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
}
