package calendar

import (
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/pkg/validator"
)

// ========================================
// WORK SCHEDULE DTOs
// ========================================

type WorkDayPayload struct {
	Weekday      int    `json:"weekday"` // 0=Sunday .. 6=Saturday
	IsWorkingDay bool   `json:"is_working_day"`
	StartTime    string `json:"start_time,omitempty"` // "HH:MM"
	EndTime      string `json:"end_time,omitempty"`   // "HH:MM"
}

type UpdateScheduleRequest struct {
	Days []WorkDayPayload `json:"days"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Days) != 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "exactly 7 weekday entries are required",
		})
		return errs
	}

	seen := map[int]bool{}
	for _, d := range r.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekday",
				Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
			})
			continue
		}
		if seen[d.Weekday] {
			errs = append(errs, validator.ValidationError{
				Field:   "weekday",
				Message: "duplicate weekday entry",
			})
		}
		seen[d.Weekday] = true

		if !d.IsWorkingDay {
			continue
		}

		start, okStart := validator.IsValidTimeOfDay(d.StartTime)
		if !okStart {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
		end, okEnd := validator.IsValidTimeOfDay(d.EndTime)
		if !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
		if okStart && okEnd && end <= start {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be after start_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToSchedule converts a validated request to the schedule entity.
func (r *UpdateScheduleRequest) ToSchedule() (WorkDaySchedule, error) {
	days := make([]WorkDay, 0, 7)
	for _, d := range r.Days {
		wd := WorkDay{
			Weekday:      time.Weekday(d.Weekday),
			IsWorkingDay: d.IsWorkingDay,
		}
		if d.IsWorkingDay {
			wd.StartMinute, _ = validator.IsValidTimeOfDay(d.StartTime)
			wd.EndMinute, _ = validator.IsValidTimeOfDay(d.EndTime)
		}
		days = append(days, wd)
	}
	return NewWorkDaySchedule(days)
}

type WorkDayResponse struct {
	Weekday      int     `json:"weekday"`
	WeekdayName  string  `json:"weekday_name"`
	IsWorkingDay bool    `json:"is_working_day"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
}

type ScheduleResponse struct {
	Days []WorkDayResponse `json:"days"`
}

// ========================================
// HOLIDAY DTOs
// ========================================

type UpsertHolidayRequest struct {
	Date string `json:"date"` // "2006-01-02"
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func (r *UpsertHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Kind, HolidayKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: national, religious, company",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}
