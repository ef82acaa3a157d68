package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/leave"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

const requestColumns = `
	r.id, r.employee_id, r.kind, r.start_date, r.end_date,
	r.start_minute, r.end_minute, r.reason, r.attachment_url,
	r.status, r.is_retrospective,
	r.decided_by, r.decided_at, r.decision_note,
	r.submitted_at, r.created_at, r.updated_at,
	e.full_name
`

// Create implements leave.RequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, kind, start_date, end_date,
			start_minute, end_minute, reason, attachment_url,
			status, is_retrospective, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, string(req.Kind), req.StartDate, req.EndDate,
		req.StartMinute, req.EndMinute, req.Reason, req.AttachmentURL,
		string(req.Status), req.IsRetrospective, req.SubmittedAt,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`, requestColumns)

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// List implements leave.RequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Kind != "" {
		conditions = append(conditions, fmt.Sprintf("r.kind = $%d", argIdx))
		args = append(args, filter.Kind)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM leave_requests r WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE %s
		ORDER BY r.submitted_at DESC
		LIMIT $%d OFFSET $%d
	`, requestColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// GetMyRequests implements leave.RequestRepository.
func (r *leaveRequestRepository) GetMyRequests(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	filter.EmployeeID = employeeID
	return r.List(ctx, filter)
}

// ListApprovedOverlapping implements leave.RequestRepository.
func (r *leaveRequestRepository) ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.employee_id = $1
		  AND r.status = 'approved'
		  AND r.start_date <= $3
		  AND r.end_date >= $2
		ORDER BY r.start_date
	`, requestColumns)

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved overlapping requests: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// ListApprovedBetween implements leave.RequestRepository.
func (r *leaveRequestRepository) ListApprovedBetween(ctx context.Context, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.status = 'approved'
		  AND r.start_date <= $2
		  AND r.end_date >= $1
		ORDER BY r.start_date
	`, requestColumns)

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved requests: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// Decide implements leave.RequestRepository. The WHERE status = 'pending'
// guard makes the transition atomic: of any number of concurrent
// decisions, exactly one update succeeds.
func (r *leaveRequestRepository) Decide(ctx context.Context, id string, status leave.Status, decidedBy string, note *string, decidedAt time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, decided_by = $3, decision_note = $4, decided_at = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, string(status), decidedBy, note, decidedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to decide leave request: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Kind, &req.StartDate, &req.EndDate,
		&req.StartMinute, &req.EndMinute, &req.Reason, &req.AttachmentURL,
		&req.Status, &req.IsRetrospective,
		&req.DecidedBy, &req.DecidedAt, &req.DecisionNote,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	return req, err
}

func scanRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}
