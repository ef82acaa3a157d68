package report

import (
	"context"
	"fmt"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/attendance"
	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/domain/employee"
	"github.com/hadirin/hadirin-backend-go/internal/domain/leave"
	"github.com/hadirin/hadirin-backend-go/internal/domain/report"
	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
	attendancesvc "github.com/hadirin/hadirin-backend-go/internal/service/attendance"
	calendarsvc "github.com/hadirin/hadirin-backend-go/internal/service/calendar"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   calendar.ScheduleRepository
	holidayRepo    calendar.HolidayRepository
	requestRepo    leave.RequestRepository
	tripRepo       trip.TripRepository

	resolver   *calendarsvc.Resolver
	classifier *attendancesvc.Classifier
	location   *time.Location
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo calendar.ScheduleRepository,
	holidayRepo calendar.HolidayRepository,
	requestRepo leave.RequestRepository,
	tripRepo trip.TripRepository,
	resolver *calendarsvc.Resolver,
	classifier *attendancesvc.Classifier,
	loc *time.Location,
) report.ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		holidayRepo:    holidayRepo,
		requestRepo:    requestRepo,
		tripRepo:       tripRepo,
		resolver:       resolver,
		classifier:     classifier,
		location:       loc,
	}
}

// RangeReport implements report.ReportService. Every (employee, date) cell
// in the range is classified from the current snapshot; a request approved
// after the fact changes the next report with no reconciliation step.
func (s *ReportServiceImpl) RangeReport(ctx context.Context, req report.RangeReportRequest) (report.RangeReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.RangeReportResponse{}, err
	}

	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, s.location)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, s.location)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return report.RangeReportResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	schedule, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		return report.RangeReportResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	holidays, err := s.holidayRepo.ListByRange(ctx, start, end)
	if err != nil {
		return report.RangeReportResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return report.RangeReportResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	recordByKey := map[string]*attendance.Attendance{}
	for i := range records {
		key := recordKey(records[i].EmployeeID, records[i].Date)
		recordByKey[key] = &records[i]
	}

	requests, err := s.requestRepo.ListApprovedBetween(ctx, start, end)
	if err != nil {
		return report.RangeReportResponse{}, fmt.Errorf("failed to list approved requests: %w", err)
	}
	requestsByEmployee := map[string][]leave.Request{}
	for _, r := range requests {
		requestsByEmployee[r.EmployeeID] = append(requestsByEmployee[r.EmployeeID], r)
	}

	trips, err := s.tripRepo.ListOverlapping(ctx, start, end)
	if err != nil {
		return report.RangeReportResponse{}, fmt.Errorf("failed to list overlapping trips: %w", err)
	}
	tripsByEmployee := map[string][]trip.BusinessTrip{}
	for i := range trips {
		for _, employeeID := range trips[i].EmployeeIDs {
			tripsByEmployee[employeeID] = append(tripsByEmployee[employeeID], trips[i])
		}
	}

	now := time.Now().In(s.location)
	summary := map[string]int{}
	var days []report.DailyStatusResponse

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		decision := s.resolver.Resolve(date, schedule, holidays)

		for _, emp := range employees {
			status := s.classifier.Classify(emp.ID, date, attendancesvc.ClassifyInput{
				Decision: decision,
				Record:   recordByKey[recordKey(emp.ID, date)],
				Requests: requestsByEmployee[emp.ID],
				Trips:    tripsByEmployee[emp.ID],
				Now:      now,
			})

			summary[string(status.Status)]++

			day := report.DailyStatusResponse{
				Date:              date.Format("2006-01-02"),
				EmployeeID:        emp.ID,
				EmployeeName:      emp.FullName,
				Status:            string(status.Status),
				EarlyLeave:        status.EarlyLeave,
				LateMinutes:       status.LateMinutes,
				EarlyLeaveMinutes: status.EarlyLeaveMinutes,
			}
			for _, anomaly := range status.Anomalies {
				day.Anomalies = append(day.Anomalies, string(anomaly))
			}
			days = append(days, day)
		}
	}

	return report.RangeReportResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Summary:   summary,
		Days:      days,
	}, nil
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}
