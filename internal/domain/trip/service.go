package trip

import "context"

// TripService defines business logic for business-trip assignments.
type TripService interface {
	// CreateTrip validates and creates a trip (admin)
	CreateTrip(ctx context.Context, req CreateTripRequest) (TripResponse, error)

	// ListTrips retrieves trips with pagination (admin)
	ListTrips(ctx context.Context, filter TripFilter) (ListTripsResponse, error)

	// GetMyTrips retrieves trips assigning the authenticated employee
	GetMyTrips(ctx context.Context, filter TripFilter) (ListTripsResponse, error)

	// GetTrip retrieves a trip with its per-day obligations
	GetTrip(ctx context.Context, id string) (TripResponse, []ObligationResponse, error)

	// DeleteTrip removes a trip (admin)
	DeleteTrip(ctx context.Context, id string) error
}
