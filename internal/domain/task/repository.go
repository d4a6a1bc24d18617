package task

import "context"

type ExternalTaskRepository interface {
	Create(ctx context.Context, t ExternalTask) (ExternalTask, error)
	GetByID(ctx context.Context, id string) (ExternalTask, error)
	// FindPunchableForDate returns the employee's first task on the given
	// working day whose status still authorizes a punch (Approved or
	// InProgress), or nil when none qualifies.
	FindPunchableForDate(ctx context.Context, employeeID, date string) (*ExternalTask, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ExternalTask, error)
	Update(ctx context.Context, t ExternalTask) error
}
