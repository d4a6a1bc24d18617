package policy

import "context"

// AttendancePolicyRepository defines read access to the attendance policy
// catalog. Policies are shared, referenced by id, never embedded.
type AttendancePolicyRepository interface {
	GetByID(ctx context.Context, id string) (AttendancePolicy, error)
	List(ctx context.Context) ([]AttendancePolicy, error)
}

type OvertimePolicyRepository interface {
	GetByID(ctx context.Context, id string) (OvertimePolicy, error)
	List(ctx context.Context) ([]OvertimePolicy, error)
}

type LeavePolicyRepository interface {
	GetByID(ctx context.Context, id string) (LeavePolicy, error)
	List(ctx context.Context) ([]LeavePolicy, error)
}

type WorkLocationRepository interface {
	GetByID(ctx context.Context, id string) (WorkLocation, error)
	// GetByIDs resolves a policy's permitted work locations; unknown ids are
	// skipped, not an error.
	GetByIDs(ctx context.Context, ids []string) ([]WorkLocation, error)
	List(ctx context.Context) ([]WorkLocation, error)
}
