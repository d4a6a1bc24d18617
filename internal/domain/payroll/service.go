package payroll

import (
	"context"
	"time"
)

// PayrollService derives payslips from attendance data and compensation
// configuration. Output is recomputed on every call.
type PayrollService interface {
	// GeneratePayslips returns one payslip per calendar month inside
	// [from, to] that has attendance data for the employee.
	GeneratePayslips(ctx context.Context, employeeID string, from, to time.Time) ([]Payslip, error)
}
