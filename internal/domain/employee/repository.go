package employee

import "context"

// EmployeeRepository defines data access methods for employee master data.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves all active employees
	ListActive(ctx context.Context) ([]Employee, error)

	// ExistAll reports whether every given employee ID exists
	ExistAll(ctx context.Context, ids []string) (bool, error)
}
