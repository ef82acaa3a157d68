package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR admin - manages schedules, locations, trips, approvals
	RoleEmployee Role = "employee" // Regular employee
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleEmployee),
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if the user may decide leave and correction requests.
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}
