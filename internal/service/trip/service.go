package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/hadirin/hadirin-backend-go/internal/domain/employee"
	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/validator"
)

type TripServiceImpl struct {
	tripRepo     trip.TripRepository
	employeeRepo employee.EmployeeRepository
	locationRepo location.LocationRepository
	resolver     *Resolver
}

func NewTripService(
	tripRepo trip.TripRepository,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
	resolver *Resolver,
) trip.TripService {
	return &TripServiceImpl{
		tripRepo:     tripRepo,
		employeeRepo: employeeRepo,
		locationRepo: locationRepo,
		resolver:     resolver,
	}
}

// CreateTrip implements trip.TripService.
func (s *TripServiceImpl) CreateTrip(ctx context.Context, req trip.CreateTripRequest) (trip.TripResponse, error) {
	if err := req.Validate(); err != nil {
		return trip.TripResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return trip.TripResponse{}, err
	}

	ok, err := s.employeeRepo.ExistAll(ctx, req.EmployeeIDs)
	if err != nil {
		return trip.TripResponse{}, fmt.Errorf("failed to verify assigned employees: %w", err)
	}
	if !ok {
		return trip.TripResponse{}, employee.ErrEmployeeNotFound
	}

	locations, err := s.locationRepo.ListByIDs(ctx, req.LocationIDs)
	if err != nil {
		return trip.TripResponse{}, fmt.Errorf("failed to verify assigned locations: %w", err)
	}
	if len(locations) != len(req.LocationIDs) {
		return trip.TripResponse{}, location.ErrLocationNotFound
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	startMinute, _ := validator.IsValidTimeOfDay(req.StartTime)
	endMinute, _ := validator.IsValidTimeOfDay(req.EndTime)

	created, err := s.tripRepo.Create(ctx, trip.BusinessTrip{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Title:       req.Title,
		OrderNumber: req.OrderNumber,
		StartDate:   startDate,
		EndDate:     endDate,
		StartMinute: startMinute,
		EndMinute:   endMinute,
		EmployeeIDs: req.EmployeeIDs,
		LocationIDs: req.LocationIDs,
		CreatedBy:   &adminID,
	})
	if err != nil {
		return trip.TripResponse{}, fmt.Errorf("failed to create business trip: %w", err)
	}

	return mapTripToResponse(created), nil
}

// ListTrips implements trip.TripService.
func (s *TripServiceImpl) ListTrips(ctx context.Context, filter trip.TripFilter) (trip.ListTripsResponse, error) {
	normalizeFilter(&filter)

	trips, total, err := s.tripRepo.List(ctx, filter)
	if err != nil {
		return trip.ListTripsResponse{}, fmt.Errorf("failed to list business trips: %w", err)
	}

	return buildListResponse(trips, total, filter), nil
}

// GetMyTrips implements trip.TripService.
func (s *TripServiceImpl) GetMyTrips(ctx context.Context, filter trip.TripFilter) (trip.ListTripsResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return trip.ListTripsResponse{}, err
	}
	filter.EmployeeID = employeeID
	normalizeFilter(&filter)

	trips, total, err := s.tripRepo.List(ctx, filter)
	if err != nil {
		return trip.ListTripsResponse{}, fmt.Errorf("failed to list employee business trips: %w", err)
	}

	return buildListResponse(trips, total, filter), nil
}

// GetTrip implements trip.TripService.
func (s *TripServiceImpl) GetTrip(ctx context.Context, id string) (trip.TripResponse, []trip.ObligationResponse, error) {
	t, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return trip.TripResponse{}, nil, fmt.Errorf("failed to get business trip: %w", err)
	}

	obligations := make([]trip.ObligationResponse, 0, t.Days()*len(t.EmployeeIDs))
	for ob := range s.resolver.Expand(t) {
		obligations = append(obligations, trip.ObligationResponse{
			Date:        ob.Date.Format("2006-01-02"),
			EmployeeID:  ob.EmployeeID,
			LocationIDs: ob.LocationIDs,
		})
	}

	return mapTripToResponse(t), obligations, nil
}

// DeleteTrip implements trip.TripService.
func (s *TripServiceImpl) DeleteTrip(ctx context.Context, id string) error {
	if _, err := s.tripRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get business trip: %w", err)
	}

	if err := s.tripRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete business trip: %w", err)
	}
	return nil
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

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func normalizeFilter(filter *trip.TripFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}
}

func buildListResponse(trips []trip.BusinessTrip, total int64, filter trip.TripFilter) trip.ListTripsResponse {
	responses := make([]trip.TripResponse, 0, len(trips))
	for _, t := range trips {
		responses = append(responses, mapTripToResponse(t))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return trip.ListTripsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Trips:      responses,
	}
}

func mapTripToResponse(t trip.BusinessTrip) trip.TripResponse {
	return trip.TripResponse{
		ID:          t.ID,
		Title:       t.Title,
		OrderNumber: t.OrderNumber,
		StartDate:   t.StartDate.Format("2006-01-02"),
		EndDate:     t.EndDate.Format("2006-01-02"),
		StartTime:   minuteToClock(t.StartMinute),
		EndTime:     minuteToClock(t.EndMinute),
		EmployeeIDs: t.EmployeeIDs,
		LocationIDs: t.LocationIDs,
	}
}

func minuteToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
