package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := r.db.Pool

	query := `
		INSERT INTO employees (
			name, position, attendance_policy_id, overtime_policy_id, leave_policy_id,
			compensation_package_id, base_salary, leave_balance_days, is_checked_in
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		emp.Name,
		emp.Position,
		emp.AttendancePolicyID,
		emp.OvertimePolicyID,
		emp.LeavePolicyID,
		emp.CompensationPackageID,
		emp.BaseSalary,
		emp.LeaveBalanceDays,
		emp.IsCheckedIn,
	).Scan(&emp.ID)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, position, attendance_policy_id, overtime_policy_id, leave_policy_id,
			   compensation_package_id, base_salary, leave_balance_days, is_checked_in
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Position, &emp.AttendancePolicyID, &emp.OvertimePolicyID,
		&emp.LeavePolicyID, &emp.CompensationPackageID, &emp.BaseSalary,
		&emp.LeaveBalanceDays, &emp.IsCheckedIn,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, position, attendance_policy_id, overtime_policy_id, leave_policy_id,
			   compensation_package_id, base_salary, leave_balance_days, is_checked_in
		FROM employees
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Position, &emp.AttendancePolicyID, &emp.OvertimePolicyID,
			&emp.LeavePolicyID, &emp.CompensationPackageID, &emp.BaseSalary,
			&emp.LeaveBalanceDays, &emp.IsCheckedIn,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := r.db.Pool

	query := `
		UPDATE employees
		SET name = $2, position = $3, attendance_policy_id = $4, overtime_policy_id = $5,
			leave_policy_id = $6, compensation_package_id = $7, base_salary = $8,
			leave_balance_days = $9, is_checked_in = $10
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.Name, emp.Position, emp.AttendancePolicyID, emp.OvertimePolicyID,
		emp.LeavePolicyID, emp.CompensationPackageID, emp.BaseSalary,
		emp.LeaveBalanceDays, emp.IsCheckedIn,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
