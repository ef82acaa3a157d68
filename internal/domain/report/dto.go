package report

import "github.com/hadirin/hadirin-backend-go/internal/pkg/validator"

type DailyStatusResponse struct {
	Date              string   `json:"date"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name"`
	Status            string   `json:"status"`
	EarlyLeave        bool     `json:"early_leave"`
	LateMinutes       int      `json:"late_minutes"`
	EarlyLeaveMinutes int      `json:"early_leave_minutes"`
	Anomalies         []string `json:"anomalies,omitempty"`
}

type RangeReportRequest struct {
	StartDate string
	EndDate   string
}

func (r *RangeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must not be before start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeReportResponse struct {
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	Summary   map[string]int        `json:"summary"`
	Days      []DailyStatusResponse `json:"days"`
}
