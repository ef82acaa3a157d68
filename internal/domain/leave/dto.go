package leave

import (
	"mime/multipart"

	"github.com/hadirin/hadirin-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE REQUEST DTOs
// ========================================

type CreateRequestRequest struct {
	Kind      string `json:"kind"`
	StartDate string `json:"start_date"` // "2006-01-02"
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time,omitempty"` // "HH:MM", partial-day kinds
	EndTime   string `json:"end_time,omitempty"`
	Reason    string `json:"reason"`

	AttachmentURL *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, KindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: sick_leave, annual_leave, personal_permit, early_leave, overtime, attendance_correction",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.StartTime != "" {
		if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}
	if r.EndTime != "" {
		if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.FileHeader != nil {
		if r.FileHeader.Size > 5<<20 { // 5MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "supporting document size must not exceed 5MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequestRequest struct {
	ID   string  `json:"-"`
	Note *string `json:"note,omitempty"`
}

type RejectRequestRequest struct {
	ID   string `json:"-"`
	Note string `json:"note"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "a rejection note is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	Kind            string  `json:"kind"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	Reason          string  `json:"reason"`
	AttachmentURL   *string `json:"attachment_url,omitempty"`
	Status          string  `json:"status"`
	IsRetrospective bool    `json:"is_retrospective"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	DecisionNote    *string `json:"decision_note,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
}

type RequestFilter struct {
	EmployeeID string
	Status     string
	Kind       string
	Page       int
	Limit      int
}

type ListRequestsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Requests   []RequestResponse `json:"requests"`
}
