package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/permit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoAttendancePolicy):
		RuleViolation(w, "No attendance policy assigned")
	case errors.Is(err, attendance.ErrNoExternalTaskAuthorization):
		RuleViolation(w, "Punch outside all work locations without an authorizing external task")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Policy domain errors
	case errors.Is(err, policy.ErrAttendancePolicyNotFound):
		NotFound(w, "Attendance policy not found")
	case errors.Is(err, policy.ErrOvertimePolicyNotFound):
		NotFound(w, "Overtime policy not found")
	case errors.Is(err, policy.ErrLeavePolicyNotFound):
		NotFound(w, "Leave policy not found")
	case errors.Is(err, policy.ErrWorkLocationNotFound):
		NotFound(w, "Work location not found")

	// Permit domain errors
	case errors.Is(err, permit.ErrBelowMinimumDuration):
		RuleViolation(w, "Permit duration is below the policy minimum")
	case errors.Is(err, permit.ErrExceedsMaximumDuration):
		RuleViolation(w, "Permit duration exceeds the policy maximum")
	case errors.Is(err, permit.ErrMonthlyQuotaExceeded):
		RuleViolation(w, "Monthly permit quota exceeded")
	case errors.Is(err, permit.ErrAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, permit.ErrPermitNotFound):
		NotFound(w, "Permit request not found")
	case errors.Is(err, permit.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment request not found")

	// External task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "External task not found")
	case errors.Is(err, task.ErrTaskNotApprovable):
		Conflict(w, "External task cannot be approved in its current status")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrComponentNotFound):
		NotFound(w, "Salary component not found")
	case errors.Is(err, payroll.ErrPackageNotFound):
		NotFound(w, "Compensation package not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
