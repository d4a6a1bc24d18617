package employee

import (
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name                  string          `json:"name"`
	Position              *string         `json:"position"`
	AttendancePolicyID    *string         `json:"attendance_policy_id"`
	OvertimePolicyID      *string         `json:"overtime_policy_id"`
	LeavePolicyID         *string         `json:"leave_policy_id"`
	CompensationPackageID *string         `json:"compensation_package_id"`
	BaseSalary            decimal.Decimal `json:"base_salary"`
	LeaveBalanceDays      float64         `json:"leave_balance_days"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.LeaveBalanceDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_balance_days",
			Message: "leave_balance_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Position              *string         `json:"position"`
	AttendancePolicyID    *string         `json:"attendance_policy_id"`
	OvertimePolicyID      *string         `json:"overtime_policy_id"`
	LeavePolicyID         *string         `json:"leave_policy_id"`
	CompensationPackageID *string         `json:"compensation_package_id"`
	BaseSalary            decimal.Decimal `json:"base_salary"`
	LeaveBalanceDays      float64         `json:"leave_balance_days"`
	IsCheckedIn           bool            `json:"is_checked_in"`
}

func (e Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:                    e.ID,
		Name:                  e.Name,
		Position:              e.Position,
		AttendancePolicyID:    e.AttendancePolicyID,
		OvertimePolicyID:      e.OvertimePolicyID,
		LeavePolicyID:         e.LeavePolicyID,
		CompensationPackageID: e.CompensationPackageID,
		BaseSalary:            e.BaseSalary,
		LeaveBalanceDays:      e.LeaveBalanceDays,
		IsCheckedIn:           e.IsCheckedIn,
	}
}
