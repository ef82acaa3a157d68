package leave

import (
	"context"
	"time"
)

// RequestRepository defines data access methods for leave/overtime/correction
// requests.
type RequestRepository interface {
	// Create creates a new pending request
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (Request, error)

	// List retrieves requests with filters and pagination
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)

	// GetMyRequests retrieves requests submitted by one employee
	GetMyRequests(ctx context.Context, employeeID string, filter RequestFilter) ([]Request, int64, error)

	// ListApprovedOverlapping retrieves approved requests for an employee
	// whose date range overlaps [start, end]
	ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Request, error)

	// ListApprovedBetween retrieves approved requests for all employees
	// whose date range overlaps [start, end]
	ListApprovedBetween(ctx context.Context, start, end time.Time) ([]Request, error)

	// Decide applies a terminal decision with a conditional update.
	// It returns the number of rows transitioned: zero means the request
	// was already decided by a concurrent actor.
	Decide(ctx context.Context, id string, status Status, decidedBy string, note *string, decidedAt time.Time) (int64, error)
}
