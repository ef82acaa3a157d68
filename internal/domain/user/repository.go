package user

import "context"

// UserRepository defines data access methods for application users.
type UserRepository interface {
	// GetByEmail retrieves a user by email, including the linked employee ID
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)
}
