package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hadirin/hadirin-backend-go/internal/domain/attendance"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.clock_in, a.clock_in_latitude, a.clock_in_longitude, a.clock_in_proof_url,
	a.clock_in_distance_m, a.matched_location_id,
	a.clock_out, a.clock_out_latitude, a.clock_out_longitude, a.clock_out_proof_url,
	a.location_anomaly, a.created_at, a.updated_at,
	e.full_name, e.position
`

// Create implements attendance.AttendanceRepository. The unique constraint
// on (employee_id, date) makes check-in at-most-once per day even under
// concurrent requests.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date,
			clock_in, clock_in_latitude, clock_in_longitude, clock_in_proof_url,
			clock_in_distance_m, matched_location_id, location_anomaly
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date,
		att.ClockIn, att.ClockInLatitude, att.ClockInLongitude, att.ClockInProofURL,
		att.ClockInDistanceM, att.MatchedLocationID, att.LocationAnomaly,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $2, clock_out_latitude = $3, clock_out_longitude = $4,
			clock_out_proof_url = $5, location_anomaly = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.ClockOut, att.ClockOutLatitude, att.ClockOutLongitude,
		att.ClockOutProofURL, att.LocationAnomaly,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendances a WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	records, err := scanAttendances(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// GetMyAttendance implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	inner := attendance.AttendanceFilter{
		EmployeeID: employeeID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	return r.List(ctx, inner)
}

// ListByDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date, e.full_name
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date range: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.ClockIn, &att.ClockInLatitude, &att.ClockInLongitude, &att.ClockInProofURL,
		&att.ClockInDistanceM, &att.MatchedLocationID,
		&att.ClockOut, &att.ClockOutLatitude, &att.ClockOutLongitude, &att.ClockOutProofURL,
		&att.LocationAnomaly, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeePosition,
	)
	return att, err
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return records, nil
}
