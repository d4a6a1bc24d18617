package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
)

// Resolver maps an employee's policy foreign keys to effective policy
// objects. A nil result with nil error is the expected "unassigned policy"
// outcome; callers treat it as no enforcement.
type Resolver struct {
	policy.AttendancePolicyRepository
	policy.OvertimePolicyRepository
	policy.LeavePolicyRepository
}

func NewResolver(
	attendanceRepo policy.AttendancePolicyRepository,
	overtimeRepo policy.OvertimePolicyRepository,
	leaveRepo policy.LeavePolicyRepository,
) *Resolver {
	return &Resolver{
		AttendancePolicyRepository: attendanceRepo,
		OvertimePolicyRepository:   overtimeRepo,
		LeavePolicyRepository:      leaveRepo,
	}
}

func (r *Resolver) ResolveAttendancePolicy(ctx context.Context, emp employee.Employee) (*policy.AttendancePolicy, error) {
	if emp.AttendancePolicyID == nil || *emp.AttendancePolicyID == "" {
		return nil, nil
	}

	p, err := r.AttendancePolicyRepository.GetByID(ctx, *emp.AttendancePolicyID)
	if err != nil {
		if errors.Is(err, policy.ErrAttendancePolicyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve attendance policy: %w", err)
	}

	return &p, nil
}

func (r *Resolver) ResolveOvertimePolicy(ctx context.Context, emp employee.Employee) (*policy.OvertimePolicy, error) {
	if emp.OvertimePolicyID == nil || *emp.OvertimePolicyID == "" {
		return nil, nil
	}

	p, err := r.OvertimePolicyRepository.GetByID(ctx, *emp.OvertimePolicyID)
	if err != nil {
		if errors.Is(err, policy.ErrOvertimePolicyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve overtime policy: %w", err)
	}

	return &p, nil
}

func (r *Resolver) ResolveLeavePolicy(ctx context.Context, emp employee.Employee) (*policy.LeavePolicy, error) {
	if emp.LeavePolicyID == nil || *emp.LeavePolicyID == "" {
		return nil, nil
	}

	p, err := r.LeavePolicyRepository.GetByID(ctx, *emp.LeavePolicyID)
	if err != nil {
		if errors.Is(err, policy.ErrLeavePolicyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve leave policy: %w", err)
	}

	return &p, nil
}
