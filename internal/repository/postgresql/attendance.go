package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceEventRepository struct {
	db *database.DB
}

func NewAttendanceEventRepository(db *database.DB) attendance.AttendanceEventRepository {
	return &attendanceEventRepository{db: db}
}

// Append implements attendance.AttendanceEventRepository. Events are
// insert-only; no update or delete statement exists for this table.
func (r *attendanceEventRepository) Append(ctx context.Context, event attendance.AttendanceEvent) (attendance.AttendanceEvent, error) {
	q := r.db.Pool

	query := `
		INSERT INTO attendance_events (
			employee_id, ts, type, is_within_geofence, latitude, longitude, task_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		event.EmployeeID,
		event.Timestamp,
		event.Type,
		event.IsWithinGeofence,
		event.Latitude,
		event.Longitude,
		event.TaskID,
	).Scan(&event.ID)

	if err != nil {
		return attendance.AttendanceEvent{}, fmt.Errorf("failed to append attendance event: %w", err)
	}

	return event, nil
}

// ListByEmployee implements attendance.AttendanceEventRepository.
func (r *attendanceEventRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.RecordFilter) ([]attendance.AttendanceEvent, error) {
	q := r.db.Pool

	query := `
		SELECT id, employee_id, ts, type, is_within_geofence, latitude, longitude, task_id
		FROM attendance_events
		WHERE employee_id = $1
		  AND ($2 = '' OR ts::date >= $2::date)
		  AND ($3 = '' OR ts::date <= $3::date)
		ORDER BY ts
	`

	rows, err := q.Query(ctx, query, employeeID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.AttendanceEvent
	for rows.Next() {
		var e attendance.AttendanceEvent
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Timestamp, &e.Type, &e.IsWithinGeofence,
			&e.Latitude, &e.Longitude, &e.TaskID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

type attendanceRecordRepository struct {
	db *database.DB
}

func NewAttendanceRecordRepository(db *database.DB) attendance.AttendanceRecordRepository {
	return &attendanceRecordRepository{db: db}
}

// GetByEmployeeAndDate implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.AttendanceRecord, error) {
	q := r.db.Pool

	query := `
		SELECT id, employee_id, date, day, status, first_check_in, last_check_out,
			   worked_hours, overtime
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Day, &rec.Status,
		&rec.FirstCheckIn, &rec.LastCheckOut, &rec.WorkedHours, &rec.Overtime,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that working day yet
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// Upsert implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepository) Upsert(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := r.db.Pool

	query := `
		INSERT INTO attendance_records (
			employee_id, date, day, status, first_check_in, last_check_out,
			worked_hours, overtime
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			first_check_in = EXCLUDED.first_check_in,
			last_check_out = EXCLUDED.last_check_out,
			worked_hours = EXCLUDED.worked_hours,
			overtime = EXCLUDED.overtime
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.Day,
		record.Status,
		record.FirstCheckIn,
		record.LastCheckOut,
		record.WorkedHours,
		record.Overtime,
	).Scan(&record.ID)

	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return record, nil
}

// ListByEmployee implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.RecordFilter) ([]attendance.AttendanceRecord, error) {
	q := r.db.Pool

	query := `
		SELECT id, employee_id, date, day, status, first_check_in, last_check_out,
			   worked_hours, overtime
		FROM attendance_records
		WHERE employee_id = $1
		  AND ($2 = '' OR date >= $2)
		  AND ($3 = '' OR date <= $3)
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Day, &rec.Status,
			&rec.FirstCheckIn, &rec.LastCheckOut, &rec.WorkedHours, &rec.Overtime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
