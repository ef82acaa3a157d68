package postgresql

import (
	"context"
	"fmt"

	"github.com/hadirin/hadirin-backend-go/internal/domain/employee"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, position, is_active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FullName, &e.Position, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return e, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, position, is_active, created_at, updated_at
		FROM employees
		WHERE is_active = true
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Position, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// ExistAll implements employee.EmployeeRepository.
func (r *employeeRepository) ExistAll(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM employees WHERE id = ANY($1)`

	var count int
	if err := q.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count employees: %w", err)
	}

	return count == len(ids), nil
}
