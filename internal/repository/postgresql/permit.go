package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/permit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type permitRepository struct {
	db *database.DB
}

func NewPermitRepository(db *database.DB) permit.PermitRepository {
	return &permitRepository{db: db}
}

// Create implements permit.PermitRepository.
func (r *permitRepository) Create(ctx context.Context, req permit.LeavePermitRequest) (permit.LeavePermitRequest, error) {
	q := r.db.Pool

	query := `
		INSERT INTO leave_permit_requests (
			employee_id, date, start_time, end_time, duration_hours, reason,
			status, submission_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Date,
		req.StartTime,
		req.EndTime,
		req.DurationHours,
		req.Reason,
		req.Status,
		req.SubmissionDate,
	).Scan(&req.ID)

	if err != nil {
		return permit.LeavePermitRequest{}, fmt.Errorf("failed to create leave permit request: %w", err)
	}

	return req, nil
}

// GetByID implements permit.PermitRepository.
func (r *permitRepository) GetByID(ctx context.Context, id string) (permit.LeavePermitRequest, error) {
	q := r.db.Pool

	query := `
		SELECT id, employee_id, date, start_time, end_time, duration_hours, reason,
			   status, submission_date
		FROM leave_permit_requests
		WHERE id = $1
	`

	var req permit.LeavePermitRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime,
		&req.DurationHours, &req.Reason, &req.Status, &req.SubmissionDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return permit.LeavePermitRequest{}, permit.ErrPermitNotFound
		}
		return permit.LeavePermitRequest{}, fmt.Errorf("failed to get leave permit request: %w", err)
	}

	return req, nil
}

// CountForMonth implements permit.PermitRepository.
func (r *permitRepository) CountForMonth(ctx context.Context, employeeID string, year int, month time.Month) (int, error) {
	q := r.db.Pool

	query := `
		SELECT COUNT(*)
		FROM leave_permit_requests
		WHERE employee_id = $1
		  AND status <> 'Rejected'
		  AND EXTRACT(YEAR FROM date::date) = $2
		  AND EXTRACT(MONTH FROM date::date) = $3
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, year, int(month)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count permits for month: %w", err)
	}

	return count, nil
}

// ListByEmployee implements permit.PermitRepository.
func (r *permitRepository) ListByEmployee(ctx context.Context, employeeID string) ([]permit.LeavePermitRequest, error) {
	q := r.db.Pool

	query := `
		SELECT id, employee_id, date, start_time, end_time, duration_hours, reason,
			   status, submission_date
		FROM leave_permit_requests
		WHERE employee_id = $1
		ORDER BY submission_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave permit requests: %w", err)
	}
	defer rows.Close()

	var requests []permit.LeavePermitRequest
	for rows.Next() {
		var req permit.LeavePermitRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime,
			&req.DurationHours, &req.Reason, &req.Status, &req.SubmissionDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave permit request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateStatus implements permit.PermitRepository.
func (r *permitRepository) UpdateStatus(ctx context.Context, id string, status permit.RequestStatus) error {
	q := r.db.Pool

	tag, err := q.Exec(ctx, `UPDATE leave_permit_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update permit status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return permit.ErrPermitNotFound
	}

	return nil
}

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) permit.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

// Create implements permit.AdjustmentRepository.
func (r *adjustmentRepository) Create(ctx context.Context, req permit.AttendanceAdjustmentRequest) (permit.AttendanceAdjustmentRequest, error) {
	q := r.db.Pool

	query := `
		INSERT INTO attendance_adjustment_requests (
			employee_id, adjustment_type, date, time, reason, status, submission_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.AdjustmentType,
		req.Date,
		req.Time,
		req.Reason,
		req.Status,
		req.SubmissionDate,
	).Scan(&req.ID)

	if err != nil {
		return permit.AttendanceAdjustmentRequest{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}

	return req, nil
}

// GetByID implements permit.AdjustmentRepository.
func (r *adjustmentRepository) GetByID(ctx context.Context, id string) (permit.AttendanceAdjustmentRequest, error) {
	q := r.db.Pool

	query := `
		SELECT id, employee_id, adjustment_type, date, time, reason, status, submission_date
		FROM attendance_adjustment_requests
		WHERE id = $1
	`

	var req permit.AttendanceAdjustmentRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.AdjustmentType, &req.Date, &req.Time,
		&req.Reason, &req.Status, &req.SubmissionDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return permit.AttendanceAdjustmentRequest{}, permit.ErrAdjustmentNotFound
		}
		return permit.AttendanceAdjustmentRequest{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}

	return req, nil
}

// ListByEmployee implements permit.AdjustmentRepository.
func (r *adjustmentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]permit.AttendanceAdjustmentRequest, error) {
	q := r.db.Pool

	query := `
		SELECT id, employee_id, adjustment_type, date, time, reason, status, submission_date
		FROM attendance_adjustment_requests
		WHERE employee_id = $1
		ORDER BY submission_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	defer rows.Close()

	var requests []permit.AttendanceAdjustmentRequest
	for rows.Next() {
		var req permit.AttendanceAdjustmentRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.AdjustmentType, &req.Date, &req.Time,
			&req.Reason, &req.Status, &req.SubmissionDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateStatus implements permit.AdjustmentRepository.
func (r *adjustmentRepository) UpdateStatus(ctx context.Context, id string, status permit.RequestStatus) error {
	q := r.db.Pool

	tag, err := q.Exec(ctx, `UPDATE attendance_adjustment_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update adjustment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return permit.ErrAdjustmentNotFound
	}

	return nil
}
