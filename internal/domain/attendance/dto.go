package attendance

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	ProofPhotoURL *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "selfie proof photo is required",
		})
	} else {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "selfie proof photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	Verdict    location.Verdict   `json:"geofence_verdict"`
}

type AttendanceResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     string   `json:"employee_name,omitempty"`
	EmployeePosition *string  `json:"employee_position,omitempty"`
	Date             string   `json:"date"`
	ClockInTime      *string  `json:"clock_in_time,omitempty"`
	ClockOutTime     *string  `json:"clock_out_time,omitempty"`
	ClockInLatitude  *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude *float64 `json:"clock_in_longitude,omitempty"`
	ClockInProofURL  *string  `json:"clock_in_proof_url,omitempty"`
	ClockOutProofURL *string  `json:"clock_out_proof_url,omitempty"`
	LocationAnomaly  *string  `json:"location_anomaly,omitempty"`

	// Derived classification, recomputed on every read.
	Status            string   `json:"status"`
	EarlyLeave        bool     `json:"early_leave"`
	LateMinutes       int      `json:"late_minutes"`
	EarlyLeaveMinutes int      `json:"early_leave_minutes"`
	Anomalies         []string `json:"anomalies,omitempty"`
}

type MyAttendanceFilter struct {
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

type AttendanceFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Page       int
	Limit      int
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
