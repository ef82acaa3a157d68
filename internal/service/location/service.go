package location

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
)

type LocationServiceImpl struct {
	locationRepo location.LocationRepository
}

func NewLocationService(locationRepo location.LocationRepository) location.LocationService {
	return &LocationServiceImpl{
		locationRepo: locationRepo,
	}
}

// CreateLocation implements location.LocationService.
func (s *LocationServiceImpl) CreateLocation(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	created, err := s.locationRepo.Create(ctx, location.Location{
		ID:   uuid.Must(uuid.NewV7()).String(),
		Name: req.Name,
		Center: location.GeoPoint{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		RadiusMeters: req.RadiusMeters,
		Kind:         location.Kind(req.Kind),
	})
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to create location: %w", err)
	}

	return mapLocationToResponse(created), nil
}

// ListLocations implements location.LocationService.
func (s *LocationServiceImpl) ListLocations(ctx context.Context) ([]location.LocationResponse, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, mapLocationToResponse(loc))
	}
	return responses, nil
}

// DeleteLocation implements location.LocationService.
func (s *LocationServiceImpl) DeleteLocation(ctx context.Context, id string) error {
	if _, err := s.locationRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get location: %w", err)
	}

	if err := s.locationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

func mapLocationToResponse(loc location.Location) location.LocationResponse {
	return location.LocationResponse{
		ID:           loc.ID,
		Name:         loc.Name,
		Latitude:     loc.Center.Latitude,
		Longitude:    loc.Center.Longitude,
		RadiusMeters: loc.RadiusMeters,
		Kind:         string(loc.Kind),
	}
}
