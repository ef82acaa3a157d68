package location

import "context"

// LocationRepository defines data access methods for registered check-in
// sites.
type LocationRepository interface {
	// Create creates a new location
	Create(ctx context.Context, loc Location) (Location, error)

	// GetByID retrieves a location by ID
	GetByID(ctx context.Context, id string) (Location, error)

	// List retrieves all locations
	List(ctx context.Context) ([]Location, error)

	// ListByKind retrieves locations of one kind
	ListByKind(ctx context.Context, kind Kind) ([]Location, error)

	// ListByIDs retrieves the locations with the given IDs
	ListByIDs(ctx context.Context, ids []string) ([]Location, error)

	// Delete removes a location
	Delete(ctx context.Context, id string) error
}
