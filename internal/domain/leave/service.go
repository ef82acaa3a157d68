package leave

import "context"

// LeaveService defines business logic for leave/overtime/correction requests.
type LeaveService interface {
	// CreateRequest submits a new pending request for the authenticated
	// employee
	CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	// GetMyRequests retrieves requests of the authenticated employee
	GetMyRequests(ctx context.Context, filter RequestFilter) (ListRequestsResponse, error)

	// ListRequests retrieves requests with filters (admin)
	ListRequests(ctx context.Context, filter RequestFilter) (ListRequestsResponse, error)

	// GetRequest retrieves a single request by ID
	GetRequest(ctx context.Context, id string) (RequestResponse, error)

	// ApproveRequest transitions a pending request to approved (admin)
	ApproveRequest(ctx context.Context, req DecideRequestRequest) (RequestResponse, error)

	// RejectRequest transitions a pending request to rejected (admin)
	RejectRequest(ctx context.Context, req RejectRequestRequest) (RequestResponse, error)
}
