package location

import "context"

// LocationService defines admin operations on registered locations.
type LocationService interface {
	// CreateLocation registers a new check-in site
	CreateLocation(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)

	// ListLocations retrieves all registered sites
	ListLocations(ctx context.Context) ([]LocationResponse, error)

	// DeleteLocation removes a site
	DeleteLocation(ctx context.Context, id string) error
}
