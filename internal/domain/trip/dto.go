package trip

import "github.com/hadirin/hadirin-backend-go/internal/pkg/validator"

type CreateTripRequest struct {
	Title       string   `json:"title"`
	OrderNumber string   `json:"order_number"`
	StartDate   string   `json:"start_date"` // "2006-01-02"
	EndDate     string   `json:"end_date"`
	StartTime   string   `json:"start_time"` // "HH:MM"
	EndTime     string   `json:"end_time"`
	EmployeeIDs []string `json:"employee_ids"`
	LocationIDs []string `json:"location_ids"`
}

func (r *CreateTripRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.OrderNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "order_number",
			Message: "order_number is required",
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

	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one assigned employee is required",
		})
	}

	if len(r.LocationIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "location_ids",
			Message: "at least one assigned location is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TripResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	OrderNumber string   `json:"order_number"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	EmployeeIDs []string `json:"employee_ids"`
	LocationIDs []string `json:"location_ids"`
}

type ObligationResponse struct {
	Date        string   `json:"date"`
	EmployeeID  string   `json:"employee_id"`
	LocationIDs []string `json:"location_ids"`
}

type TripFilter struct {
	EmployeeID string
	Page       int
	Limit      int
}

type ListTripsResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Trips      []TripResponse `json:"trips"`
}
