package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendancePolicyRepository struct {
	db *database.DB
}

func NewAttendancePolicyRepository(db *database.DB) policy.AttendancePolicyRepository {
	return &attendancePolicyRepository{db: db}
}

// Lateness tiers live in a jsonb column; work location ids in a text[].
func scanAttendancePolicy(row pgx.Row) (policy.AttendancePolicy, error) {
	var p policy.AttendancePolicy
	var tiersJSON []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.Status, &p.GracePeriodInMinutes, &p.BreakDurationHours,
		&tiersJSON, &p.WorkLocationIDs, &p.MinPermitDurationMinutes,
		&p.MaxPermitDurationHours, &p.MaxPermitsPerMonth,
	)
	if err != nil {
		return policy.AttendancePolicy{}, err
	}

	if len(tiersJSON) > 0 {
		if err := json.Unmarshal(tiersJSON, &p.LatenessTiers); err != nil {
			return policy.AttendancePolicy{}, fmt.Errorf("failed to decode lateness tiers: %w", err)
		}
	}

	return p, nil
}

const attendancePolicyColumns = `
	id, name, status, grace_period_in_minutes, break_duration_hours,
	lateness_tiers, work_location_ids, min_permit_duration_minutes,
	max_permit_duration_hours, max_permits_per_month
`

// GetByID implements policy.AttendancePolicyRepository.
func (r *attendancePolicyRepository) GetByID(ctx context.Context, id string) (policy.AttendancePolicy, error) {
	q := r.db.Pool

	query := `SELECT ` + attendancePolicyColumns + ` FROM attendance_policies WHERE id = $1`

	p, err := scanAttendancePolicy(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.AttendancePolicy{}, policy.ErrAttendancePolicyNotFound
		}
		return policy.AttendancePolicy{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	return p, nil
}

// List implements policy.AttendancePolicyRepository.
func (r *attendancePolicyRepository) List(ctx context.Context) ([]policy.AttendancePolicy, error) {
	q := r.db.Pool

	query := `SELECT ` + attendancePolicyColumns + ` FROM attendance_policies ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance policies: %w", err)
	}
	defer rows.Close()

	var policies []policy.AttendancePolicy
	for rows.Next() {
		p, err := scanAttendancePolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance policy: %w", err)
		}
		policies = append(policies, p)
	}

	return policies, rows.Err()
}

type overtimePolicyRepository struct {
	db *database.DB
}

func NewOvertimePolicyRepository(db *database.DB) policy.OvertimePolicyRepository {
	return &overtimePolicyRepository{db: db}
}

// GetByID implements policy.OvertimePolicyRepository.
func (r *overtimePolicyRepository) GetByID(ctx context.Context, id string) (policy.OvertimePolicy, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, status, allow_overtime, min_overtime_in_minutes
		FROM overtime_policies
		WHERE id = $1
	`

	var p policy.OvertimePolicy
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Status, &p.AllowOvertime, &p.MinOvertimeInMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.OvertimePolicy{}, policy.ErrOvertimePolicyNotFound
		}
		return policy.OvertimePolicy{}, fmt.Errorf("failed to get overtime policy: %w", err)
	}

	return p, nil
}

// List implements policy.OvertimePolicyRepository.
func (r *overtimePolicyRepository) List(ctx context.Context) ([]policy.OvertimePolicy, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, status, allow_overtime, min_overtime_in_minutes
		FROM overtime_policies
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime policies: %w", err)
	}
	defer rows.Close()

	var policies []policy.OvertimePolicy
	for rows.Next() {
		var p policy.OvertimePolicy
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.AllowOvertime, &p.MinOvertimeInMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan overtime policy: %w", err)
		}
		policies = append(policies, p)
	}

	return policies, rows.Err()
}

type leavePolicyRepository struct {
	db *database.DB
}

func NewLeavePolicyRepository(db *database.DB) policy.LeavePolicyRepository {
	return &leavePolicyRepository{db: db}
}

// GetByID implements policy.LeavePolicyRepository.
func (r *leavePolicyRepository) GetByID(ctx context.Context, id string) (policy.LeavePolicy, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, status, annual_quota_days
		FROM leave_policies
		WHERE id = $1
	`

	var p policy.LeavePolicy
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Status, &p.AnnualQuotaDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.LeavePolicy{}, policy.ErrLeavePolicyNotFound
		}
		return policy.LeavePolicy{}, fmt.Errorf("failed to get leave policy: %w", err)
	}

	return p, nil
}

// List implements policy.LeavePolicyRepository.
func (r *leavePolicyRepository) List(ctx context.Context) ([]policy.LeavePolicy, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, status, annual_quota_days
		FROM leave_policies
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave policies: %w", err)
	}
	defer rows.Close()

	var policies []policy.LeavePolicy
	for rows.Next() {
		var p policy.LeavePolicy
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.AnnualQuotaDays); err != nil {
			return nil, fmt.Errorf("failed to scan leave policy: %w", err)
		}
		policies = append(policies, p)
	}

	return policies, rows.Err()
}

type workLocationRepository struct {
	db *database.DB
}

func NewWorkLocationRepository(db *database.DB) policy.WorkLocationRepository {
	return &workLocationRepository{db: db}
}

// GetByID implements policy.WorkLocationRepository.
func (r *workLocationRepository) GetByID(ctx context.Context, id string) (policy.WorkLocation, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, latitude, longitude, radius_meters
		FROM work_locations
		WHERE id = $1
	`

	var loc policy.WorkLocation
	err := q.QueryRow(ctx, query, id).Scan(&loc.ID, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.RadiusMeters)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.WorkLocation{}, policy.ErrWorkLocationNotFound
		}
		return policy.WorkLocation{}, fmt.Errorf("failed to get work location: %w", err)
	}

	return loc, nil
}

// GetByIDs implements policy.WorkLocationRepository.
func (r *workLocationRepository) GetByIDs(ctx context.Context, ids []string) ([]policy.WorkLocation, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := r.db.Pool

	query := `
		SELECT id, name, latitude, longitude, radius_meters
		FROM work_locations
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get work locations: %w", err)
	}
	defer rows.Close()

	var locations []policy.WorkLocation
	for rows.Next() {
		var loc policy.WorkLocation
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.RadiusMeters); err != nil {
			return nil, fmt.Errorf("failed to scan work location: %w", err)
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// List implements policy.WorkLocationRepository.
func (r *workLocationRepository) List(ctx context.Context) ([]policy.WorkLocation, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, latitude, longitude, radius_meters
		FROM work_locations
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work locations: %w", err)
	}
	defer rows.Close()

	var locations []policy.WorkLocation
	for rows.Next() {
		var loc policy.WorkLocation
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.RadiusMeters); err != nil {
			return nil, fmt.Errorf("failed to scan work location: %w", err)
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}
