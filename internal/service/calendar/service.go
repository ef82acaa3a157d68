package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
)

type CalendarServiceImpl struct {
	scheduleRepo calendar.ScheduleRepository
	holidayRepo  calendar.HolidayRepository
}

func NewCalendarService(scheduleRepo calendar.ScheduleRepository, holidayRepo calendar.HolidayRepository) calendar.CalendarService {
	return &CalendarServiceImpl{
		scheduleRepo: scheduleRepo,
		holidayRepo:  holidayRepo,
	}
}

// GetSchedule implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetSchedule(ctx context.Context) (calendar.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		return calendar.ScheduleResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return mapScheduleToResponse(schedule), nil
}

// UpdateSchedule implements calendar.CalendarService.
func (s *CalendarServiceImpl) UpdateSchedule(ctx context.Context, req calendar.UpdateScheduleRequest) (calendar.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.ScheduleResponse{}, err
	}

	schedule, err := req.ToSchedule()
	if err != nil {
		return calendar.ScheduleResponse{}, fmt.Errorf("failed to build schedule: %w", err)
	}

	if err := s.scheduleRepo.Save(ctx, schedule); err != nil {
		return calendar.ScheduleResponse{}, fmt.Errorf("failed to save work schedule: %w", err)
	}

	return mapScheduleToResponse(schedule), nil
}

// ListHolidays implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context) ([]calendar.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, calendar.HolidayResponse{
			Date: h.Date.Format("2006-01-02"),
			Name: h.Name,
			Kind: string(h.Kind),
		})
	}
	return responses, nil
}

// UpsertHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) UpsertHoliday(ctx context.Context, req calendar.UpsertHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	holiday := calendar.Holiday{
		Date: date,
		Name: req.Name,
		Kind: calendar.HolidayKind(req.Kind),
	}

	if err := s.holidayRepo.Upsert(ctx, holiday); err != nil {
		return calendar.HolidayResponse{}, fmt.Errorf("failed to upsert holiday: %w", err)
	}

	return calendar.HolidayResponse{
		Date: holiday.Date.Format("2006-01-02"),
		Name: holiday.Name,
		Kind: string(holiday.Kind),
	}, nil
}

// DeleteHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeleteHoliday(ctx context.Context, dateStr string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid holiday date %q: %w", dateStr, err)
	}

	if err := s.holidayRepo.DeleteByDate(ctx, date); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func mapScheduleToResponse(schedule calendar.WorkDaySchedule) calendar.ScheduleResponse {
	days := make([]calendar.WorkDayResponse, 0, 7)
	for _, d := range schedule.Days() {
		resp := calendar.WorkDayResponse{
			Weekday:      int(d.Weekday),
			WeekdayName:  d.Weekday.String(),
			IsWorkingDay: d.IsWorkingDay,
		}
		if d.IsWorkingDay {
			start := minuteToClock(d.StartMinute)
			end := minuteToClock(d.EndMinute)
			resp.StartTime = &start
			resp.EndTime = &end
		}
		days = append(days, resp)
	}
	return calendar.ScheduleResponse{Days: days}
}

func minuteToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
