package permit

import (
	"context"
	"time"
)

type PermitRepository interface {
	Create(ctx context.Context, req LeavePermitRequest) (LeavePermitRequest, error)
	GetByID(ctx context.Context, id string) (LeavePermitRequest, error)
	// CountForMonth counts the employee's permits in the given calendar
	// month, excluding Rejected ones.
	CountForMonth(ctx context.Context, employeeID string, year int, month time.Month) (int, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeavePermitRequest, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) error
}

type AdjustmentRepository interface {
	Create(ctx context.Context, req AttendanceAdjustmentRequest) (AttendanceAdjustmentRequest, error)
	GetByID(ctx context.Context, id string) (AttendanceAdjustmentRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceAdjustmentRequest, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) error
}
