package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/hadirin/hadirin-backend-go/internal/domain/attendance"
	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/domain/leave"
	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
	calendarsvc "github.com/hadirin/hadirin-backend-go/internal/service/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/service/file"
	"github.com/hadirin/hadirin-backend-go/internal/service/geofence"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   calendar.ScheduleRepository
	holidayRepo    calendar.HolidayRepository
	requestRepo    leave.RequestRepository
	tripRepo       trip.TripRepository
	locationRepo   location.LocationRepository
	fileService    file.FileService

	resolver   *calendarsvc.Resolver
	geofence   *geofence.Validator
	classifier *Classifier
	location   *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo calendar.ScheduleRepository,
	holidayRepo calendar.HolidayRepository,
	requestRepo leave.RequestRepository,
	tripRepo trip.TripRepository,
	locationRepo location.LocationRepository,
	fileService file.FileService,
	resolver *calendarsvc.Resolver,
	geofenceValidator *geofence.Validator,
	classifier *Classifier,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		holidayRepo:    holidayRepo,
		requestRepo:    requestRepo,
		tripRepo:       tripRepo,
		locationRepo:   locationRepo,
		fileService:    fileService,
		resolver:       resolver,
		geofence:       geofenceValidator,
		classifier:     classifier,
		location:       loc,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	now := time.Now().In(a.location)
	date := a.truncateToDay(now)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil && existing.ClockIn != nil {
		return attendance.CheckResponse{}, attendance.ErrAlreadyCheckedIn
	}

	point := location.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	eligible, err := a.eligibleLocations(ctx, employeeID, date)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	// A failed geofence check never rejects the check-in. The record is
	// kept with an anomaly flag for admin review.
	verdict := a.geofence.Evaluate(point, eligible)
	var anomaly *string
	switch {
	case len(eligible) == 0:
		flag := string(attendance.AnomalyNoRegisteredLocation)
		anomaly = &flag
	case !verdict.WithinRadius:
		flag := string(attendance.AnomalyOutsideRadius)
		anomaly = &flag
	}

	proofURL, err := a.fileService.UploadAttendanceProof(ctx, employeeID, date, req.File, req.FileHeader.Filename, "in")
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to upload check-in proof: %w", err)
	}

	created, err := a.attendanceRepo.Create(ctx, attendance.Attendance{
		ID:                uuid.Must(uuid.NewV7()).String(),
		EmployeeID:        employeeID,
		Date:              date,
		ClockIn:           &now,
		ClockInLatitude:   &req.Latitude,
		ClockInLongitude:  &req.Longitude,
		ClockInProofURL:   &proofURL,
		ClockInDistanceM:  &verdict.DistanceMeters,
		MatchedLocationID: verdict.MatchedLocationID,
		LocationAnomaly:   anomaly,
	})
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	resp, err := a.classifyOne(ctx, created, now)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	return attendance.CheckResponse{Attendance: resp, Verdict: verdict}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	now := time.Now().In(a.location)
	date := a.truncateToDay(now)

	record, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.ClockIn == nil {
		return attendance.CheckResponse{}, attendance.ErrNotCheckedIn
	}
	if record.ClockOut != nil {
		return attendance.CheckResponse{}, attendance.ErrAlreadyCheckedOut
	}

	point := location.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	eligible, err := a.eligibleLocations(ctx, employeeID, date)
	if err != nil {
		return attendance.CheckResponse{}, err
	}
	verdict := a.geofence.Evaluate(point, eligible)

	proofURL, err := a.fileService.UploadAttendanceProof(ctx, employeeID, date, req.File, req.FileHeader.Filename, "out")
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to upload check-out proof: %w", err)
	}

	record.ClockOut = &now
	record.ClockOutLatitude = &req.Latitude
	record.ClockOutLongitude = &req.Longitude
	record.ClockOutProofURL = &proofURL

	if err := a.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	resp, err := a.classifyOne(ctx, *record, now)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	return attendance.CheckResponse{Attendance: resp, Verdict: verdict}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	records, total, err := a.attendanceRepo.GetMyAttendance(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list employee attendance: %w", err)
	}

	responses, err := a.classifyMany(ctx, records)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	records, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses, err := a.classifyMany(ctx, records)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return a.classifyOne(ctx, record, time.Now().In(a.location))
}

// eligibleLocations returns the geofence set for the employee today: the
// union of any covering trips' sites, or all fixed sites when no trip
// applies.
func (a *AttendanceServiceImpl) eligibleLocations(ctx context.Context, employeeID string, date time.Time) ([]location.Location, error) {
	trips, err := a.tripRepo.ListByEmployeeAndRange(ctx, employeeID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee trips: %w", err)
	}

	var tripLocationIDs []string
	seen := map[string]bool{}
	for i := range trips {
		if !trips[i].Covers(employeeID, date) {
			continue
		}
		for _, id := range trips[i].LocationIDs {
			if !seen[id] {
				seen[id] = true
				tripLocationIDs = append(tripLocationIDs, id)
			}
		}
	}

	if len(tripLocationIDs) > 0 {
		locations, err := a.locationRepo.ListByIDs(ctx, tripLocationIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to list trip locations: %w", err)
		}
		return locations, nil
	}

	locations, err := a.locationRepo.ListByKind(ctx, location.KindFixed)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed locations: %w", err)
	}
	return locations, nil
}

// classifyOne classifies a single record. Unlike classifyMany it narrows
// the request and trip queries to the record's employee instead of loading
// every employee's rows for the date.
func (a *AttendanceServiceImpl) classifyOne(ctx context.Context, record attendance.Attendance, now time.Time) (attendance.AttendanceResponse, error) {
	schedule, err := a.scheduleRepo.Get(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	holidays, err := a.holidayRepo.ListByRange(ctx, record.Date, record.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	requests, err := a.requestRepo.ListApprovedOverlapping(ctx, record.EmployeeID, record.Date, record.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to list approved requests: %w", err)
	}

	trips, err := a.tripRepo.ListByEmployeeAndRange(ctx, record.EmployeeID, record.Date, record.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to list business trips: %w", err)
	}

	snap := snapshot{
		schedule: schedule,
		holidays: holidays,
		requests: map[string][]leave.Request{record.EmployeeID: requests},
		trips:    map[string][]trip.BusinessTrip{record.EmployeeID: trips},
	}
	return a.buildResponse(record, snap, now), nil
}

// classifyMany classifies a page of records against one snapshot covering
// their whole date range.
func (a *AttendanceServiceImpl) classifyMany(ctx context.Context, records []attendance.Attendance) ([]attendance.AttendanceResponse, error) {
	if len(records) == 0 {
		return []attendance.AttendanceResponse{}, nil
	}

	minDate, maxDate := records[0].Date, records[0].Date
	for _, r := range records[1:] {
		if r.Date.Before(minDate) {
			minDate = r.Date
		}
		if r.Date.After(maxDate) {
			maxDate = r.Date
		}
	}

	snap, err := a.loadSnapshot(ctx, minDate, maxDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(a.location)
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, a.buildResponse(r, snap, now))
	}
	return responses, nil
}

// snapshot is the classification context for a date range: the weekly
// schedule, holidays, approved requests, and trips overlapping it.
type snapshot struct {
	schedule calendar.WorkDaySchedule
	holidays []calendar.Holiday
	requests map[string][]leave.Request
	trips    map[string][]trip.BusinessTrip
}

func (a *AttendanceServiceImpl) loadSnapshot(ctx context.Context, start, end time.Time) (snapshot, error) {
	schedule, err := a.scheduleRepo.Get(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	holidays, err := a.holidayRepo.ListByRange(ctx, start, end)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	requests, err := a.requestRepo.ListApprovedBetween(ctx, start, end)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list approved requests: %w", err)
	}
	requestsByEmployee := map[string][]leave.Request{}
	for _, r := range requests {
		requestsByEmployee[r.EmployeeID] = append(requestsByEmployee[r.EmployeeID], r)
	}

	trips, err := a.tripRepo.ListOverlapping(ctx, start, end)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list overlapping trips: %w", err)
	}
	tripsByEmployee := map[string][]trip.BusinessTrip{}
	for i := range trips {
		for _, employeeID := range trips[i].EmployeeIDs {
			tripsByEmployee[employeeID] = append(tripsByEmployee[employeeID], trips[i])
		}
	}

	return snapshot{
		schedule: schedule,
		holidays: holidays,
		requests: requestsByEmployee,
		trips:    tripsByEmployee,
	}, nil
}

func (a *AttendanceServiceImpl) buildResponse(record attendance.Attendance, snap snapshot, now time.Time) attendance.AttendanceResponse {
	decision := a.resolver.Resolve(record.Date, snap.schedule, snap.holidays)

	recordCopy := record
	status := a.classifier.Classify(record.EmployeeID, record.Date, ClassifyInput{
		Decision: decision,
		Record:   &recordCopy,
		Requests: snap.requests[record.EmployeeID],
		Trips:    snap.trips[record.EmployeeID],
		Now:      now,
	})

	resp := attendance.AttendanceResponse{
		ID:               record.ID,
		EmployeeID:       record.EmployeeID,
		EmployeePosition: record.EmployeePosition,
		Date:             record.Date.Format("2006-01-02"),
		ClockInLatitude:  record.ClockInLatitude,
		ClockInLongitude: record.ClockInLongitude,
		ClockInProofURL:  record.ClockInProofURL,
		ClockOutProofURL: record.ClockOutProofURL,
		LocationAnomaly:  record.LocationAnomaly,

		Status:            string(status.Status),
		EarlyLeave:        status.EarlyLeave,
		LateMinutes:       status.LateMinutes,
		EarlyLeaveMinutes: status.EarlyLeaveMinutes,
	}

	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	if record.ClockIn != nil {
		clockIn := record.ClockIn.In(a.location).Format("15:04:05")
		resp.ClockInTime = &clockIn
	}
	if record.ClockOut != nil {
		clockOut := record.ClockOut.In(a.location).Format("15:04:05")
		resp.ClockOutTime = &clockOut
	}
	for _, anomaly := range status.Anomalies {
		resp.Anomalies = append(resp.Anomalies, string(anomaly))
	}

	return resp
}

func (a *AttendanceServiceImpl) truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, a.location)
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}
