package response

import (
	"errors"
	"net/http"

	"github.com/hadirin/hadirin-backend-go/internal/domain/attendance"
	"github.com/hadirin/hadirin-backend-go/internal/domain/auth"
	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/domain/employee"
	"github.com/hadirin/hadirin-backend-go/internal/domain/leave"
	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
	"github.com/hadirin/hadirin-backend-go/internal/domain/user"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "You have not checked in yet")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, leave.ErrAttachmentRequired):
		BadRequest(w, "Supporting document is required for this request kind", nil)

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrScheduleNotFound):
		NotFound(w, "Work schedule not configured")

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")

	// Trip domain errors
	case errors.Is(err, trip.ErrTripNotFound):
		NotFound(w, "Business trip not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
