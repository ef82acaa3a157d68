package trip

import (
	"context"
	"time"
)

// TripRepository defines data access methods for business trips and their
// employee/location assignments.
type TripRepository interface {
	// Create creates a trip with its assignment rows
	Create(ctx context.Context, trip BusinessTrip) (BusinessTrip, error)

	// GetByID retrieves a trip by ID
	GetByID(ctx context.Context, id string) (BusinessTrip, error)

	// List retrieves trips with pagination
	List(ctx context.Context, filter TripFilter) ([]BusinessTrip, int64, error)

	// ListByEmployeeAndRange retrieves trips assigning the employee that
	// overlap [start, end]
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]BusinessTrip, error)

	// ListOverlapping retrieves all trips overlapping [start, end]
	ListOverlapping(ctx context.Context, start, end time.Time) ([]BusinessTrip, error)

	// Delete removes a trip and its assignments
	Delete(ctx context.Context, id string) error
}
